package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fib-lab/lanesim/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDetailedAndSummary(t *testing.T) {
	dir := t.TempDir()
	records := []report.RunRecord{
		{VehicleCount: 30, Lanes: 3, RoadLength: 1000, MeanVelocity: 20, DistractedPercentage: 10},
		{VehicleCount: 30, Lanes: 3, RoadLength: 1000, MeanVelocity: 22, DistractedPercentage: 10},
		{VehicleCount: 60, Lanes: 3, RoadLength: 1000, MeanVelocity: 15, DistractedPercentage: 20},
	}

	detailedPath := filepath.Join(dir, "detailed.csv")
	require.NoError(t, report.WriteDetailed(detailedPath, records))
	detailed, err := os.ReadFile(detailedPath)
	require.NoError(t, err)
	assert.Contains(t, string(detailed), "Density,Flow,Percentage of Distracted Vehicles")

	summaryPath := filepath.Join(dir, "summary.csv")
	require.NoError(t, report.WriteSummary(summaryPath, records))
	summary, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Average Flow")
	assert.Contains(t, string(summary), "Standard Deviation of Flow")
}

func TestRunRecordDensityAndFlow(t *testing.T) {
	r := report.RunRecord{VehicleCount: 30, Lanes: 3, RoadLength: 1000, MeanVelocity: 20}
	assert.InDelta(t, 0.01, r.Density(), 1e-9)
	assert.InDelta(t, 0.2, r.Flow(), 1e-9)
}
