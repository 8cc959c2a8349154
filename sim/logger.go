package sim

import "github.com/sirupsen/logrus"

// log is the sim package's logging sink, matching the teacher's
// per-package logger idiom (entity/person/logger.go).
var log = logrus.WithField("module", "sim")
