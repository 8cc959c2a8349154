package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/fib-lab/lanesim/config"
	"github.com/fib-lab/lanesim/report"
	"github.com/fib-lab/lanesim/sim"
	"github.com/fib-lab/lanesim/sweep"
	"github.com/sirupsen/logrus"
)

var (
	roadLength           = flag.Float64("road-length", 1000, "road length in meters")
	lanes                = flag.Int("lanes", 3, "number of lanes")
	distractedPercentage = flag.Float64("distracted-percentage", 10, "percentage of initial vehicles that can be distracted")
	simTime              = flag.Float64("sim-time", 100, "simulation time in seconds")
	dt                   = flag.Float64("dt", 0.5, "tick length in seconds")
	nVehicles            = flag.Int("n-vehicles", 30, "initial vehicle count")
	driverDistribution   = flag.String("driver-distribution", "0.3,0.3,0.2,0.1,0.1", "comma-separated AGGRESSIVE,NORMAL,CAUTIOUS,POLITE,SUBMISSIVE fractions")
	seed                 = flag.Uint64("seed", 1, "PRNG seed")

	numSimulations = flag.Int("num-simulations", 1, "simulations per vehicle count, used with --mode multiple")
	vehicleCounts  = flag.String("vehicle-counts", "", "comma-separated vehicle counts, used with --mode multiple")

	mode = flag.String("mode", "normal", "normal | no-animation | multiple")

	addVehicle         = flag.Bool("add-vehicle", false, "schedule one additional vehicle before running")
	vehicleType        = flag.String("vehicle-type", "NORMAL", "driver type for --add-vehicle")
	vehicleLane        = flag.Int("vehicle-lane", 0, "lane for --add-vehicle")
	vehiclePosition    = flag.Float64("vehicle-position", 0, "initial position for --add-vehicle")
	vehicleVelocity    = flag.Float64("vehicle-velocity", 30, "desired velocity for --add-vehicle")
	vehicleDeployTime  = flag.Float64("vehicle-deploy-time", 0, "deployment time for --add-vehicle")
	vehicleDistracted  = flag.Bool("vehicle-distracted", false, "whether the --add-vehicle vehicle can be distracted")

	steps          = flag.Int("steps", 0, "number of ticks to run; 0 derives this from --sim-time/--dt")
	saveAnimation  = flag.Bool("save-animation", false, "accepted for collaborator compatibility; this core does not render animation")
	reportDir      = flag.String("report-dir", "", "directory to write Detailed/Summary Results CSVs, used with --mode multiple")

	logLevels = map[string]logrus.Level{
		"trace": logrus.TraceLevel, "debug": logrus.DebugLevel, "info": logrus.InfoLevel,
		"warn": logrus.WarnLevel, "error": logrus.ErrorLevel, "critical": logrus.FatalLevel, "off": logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "log level: trace debug info warn error critical off")

	log = logrus.WithField("module", "lanesim")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Fatalf("log.level must be one of %v", logLevels)
	}

	cfg, err := buildConfig()
	if err != nil {
		log.Errorf("invalid configuration: %v", err)
		os.Exit(1)
	}

	if *saveAnimation {
		log.Warn("--save-animation accepted but ignored: animation rendering is out of this core's scope")
	}

	switch *mode {
	case "normal", "no-animation":
		runSingle(cfg)
	case "multiple":
		runMultiple(cfg)
	default:
		log.Errorf("unknown --mode %q", *mode)
		os.Exit(1)
	}
}

func buildConfig() (config.Config, error) {
	dist, err := parseDriverDistribution(*driverDistribution)
	if err != nil {
		return config.Config{}, err
	}
	cfg := config.Config{
		RoadLength:             *roadLength,
		Lanes:                  *lanes,
		NumVehicles:            *nVehicles,
		DT:                     *dt,
		SimulationTime:         *simTime,
		DistractedPercentage:   *distractedPercentage,
		DriverTypeDistribution: dist,
		Seed:                   *seed,
		LaneChangeGateProb:     0.1,
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func parseDriverDistribution(s string) (config.DriverDistribution, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return config.DriverDistribution{}, fmt.Errorf("--driver-distribution needs exactly 5 comma-separated values, got %d", len(parts))
	}
	values := make([]float64, 5)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return config.DriverDistribution{}, fmt.Errorf("--driver-distribution: %w", err)
		}
		values[i] = v
	}
	return config.DriverDistribution{Aggressive: values[0], Normal: values[1], Cautious: values[2], Polite: values[3], Submissive: values[4]}, nil
}

func numSteps(cfg config.Config) int {
	if *steps > 0 {
		return *steps
	}
	return int(cfg.SimulationTime / cfg.DT)
}

func runSingle(cfg config.Config) {
	w, err := sim.NewWorld(cfg)
	if err != nil {
		log.Errorf("failed to build world: %v", err)
		os.Exit(1)
	}
	if *addVehicle {
		scheduleExtraVehicle(w)
	}

	n := numSteps(cfg)
	mean := w.RunSteps(n)
	log.Infof("ran %d steps, mean velocity over run = %f", n, mean)
	fmt.Print(w.DebugDump())
}

func scheduleExtraVehicle(w *sim.World) {
	t := parseDriverType(*vehicleType)
	w.ScheduleVehicle(sim.ScheduledDeployment{
		Type: t, Lane: *vehicleLane, InitialPosition: *vehiclePosition,
		DesiredVelocity: *vehicleVelocity, DeploymentTime: *vehicleDeployTime,
		IsDistractedCapable: *vehicleDistracted,
	})
}

func parseDriverType(s string) sim.DriverType {
	switch strings.ToUpper(s) {
	case "AGGRESSIVE":
		return sim.Aggressive
	case "CAUTIOUS":
		return sim.Cautious
	case "POLITE":
		return sim.Polite
	case "SUBMISSIVE":
		return sim.Submissive
	case "OBSTACLE":
		return sim.Obstacle
	default:
		return sim.Normal
	}
}

func runMultiple(cfg config.Config) {
	counts, err := parseIntList(*vehicleCounts)
	if err != nil || len(counts) == 0 {
		log.Errorf("--mode multiple requires --vehicle-counts: %v", err)
		os.Exit(1)
	}

	seeds := make([]uint64, *numSimulations)
	for i := range seeds {
		seeds[i] = cfg.Seed + uint64(i)
	}

	results := sweep.Run(cfg, counts, seeds, numSteps(cfg))

	var records []report.RunRecord
	for _, r := range results {
		if r.Err != nil {
			log.Errorf("run (n=%d seed=%d) failed: %v", r.VehicleCount, r.Seed, r.Err)
			continue
		}
		records = append(records, report.RunRecord{
			VehicleCount: r.VehicleCount, Lanes: cfg.Lanes, RoadLength: cfg.RoadLength,
			MeanVelocity: r.MeanVelocity, DistractedPercentage: cfg.DistractedPercentage,
			AggressivePct: cfg.DriverTypeDistribution.Aggressive * 100,
			NormalPct:     cfg.DriverTypeDistribution.Normal * 100,
			CautiousPct:   cfg.DriverTypeDistribution.Cautious * 100,
			PolitePct:     cfg.DriverTypeDistribution.Polite * 100,
			SubmissivePct: cfg.DriverTypeDistribution.Submissive * 100,
		})
	}

	if *reportDir != "" {
		if err := os.MkdirAll(*reportDir, 0o755); err != nil {
			log.Errorf("failed to create report dir: %v", err)
			os.Exit(1)
		}
		if err := report.WriteDetailed(*reportDir+"/detailed_results.csv", records); err != nil {
			log.Errorf("failed to write detailed results: %v", err)
			os.Exit(1)
		}
		if err := report.WriteSummary(*reportDir+"/summary_results.csv", records); err != nil {
			log.Errorf("failed to write summary results: %v", err)
			os.Exit(1)
		}
	}
	log.Infof("completed %d runs", len(records))
}

func parseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty list")
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
