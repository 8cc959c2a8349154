// Package report exports the two-sheet workbook spec.md §6 describes
// ("Detailed Results" / "Summary Results") as two CSV files — no
// xlsx-capable library is grounded anywhere in the retrieved example
// pack (see DESIGN.md), so this is the nearest faithful stdlib
// equivalent, using the column vocabulary of
// original_source/src/scripts/flow_density_plotter.py. The package
// only ever consumes RunRecord/sim.SimState summaries, never World
// internals, matching spec.md's "external collaborators consume only
// snapshots" boundary.
package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
)

// RunRecord is one completed simulation's summary row.
type RunRecord struct {
	VehicleCount         int
	Lanes                int
	RoadLength           float64
	MeanVelocity         float64
	DistractedPercentage float64
	AggressivePct        float64
	NormalPct            float64
	CautiousPct          float64
	PolitePct            float64
	SubmissivePct        float64
}

// Density is vehicles per meter per lane (spec §6: density = N/(L*K)).
func (r RunRecord) Density() float64 {
	return float64(r.VehicleCount) / (r.RoadLength * float64(r.Lanes))
}

// Flow is density * mean_speed (spec §6).
func (r RunRecord) Flow() float64 {
	return r.Density() * r.MeanVelocity
}

var detailedHeader = []string{
	"Density", "Flow", "Percentage of Distracted Vehicles",
	"Aggressive %", "Normal %", "Cautious %", "Polite %", "Submissive %",
}

// WriteDetailed writes one row per individual simulation.
func WriteDetailed(path string, records []RunRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(detailedHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			formatFloat(r.Density()), formatFloat(r.Flow()), formatFloat(r.DistractedPercentage),
			formatFloat(r.AggressivePct), formatFloat(r.NormalPct), formatFloat(r.CautiousPct),
			formatFloat(r.PolitePct), formatFloat(r.SubmissivePct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

type summaryGroupKey struct {
	density     float64
	distracted  float64
}

type summaryGroup struct {
	key   summaryGroupKey
	flows []float64
}

var summaryHeader = []string{
	"Density", "Percentage of Distracted Vehicles",
	"Average Flow", "Standard Deviation of Flow", "Min Flow", "Max Flow",
}

// WriteSummary groups records by (density, distracted_percentage) and
// writes mean/std/min/max of flow per group (spec §6).
func WriteSummary(path string, records []RunRecord) error {
	groups := make(map[summaryGroupKey]*summaryGroup)
	var order []summaryGroupKey
	for _, r := range records {
		key := summaryGroupKey{density: r.Density(), distracted: r.DistractedPercentage}
		g, ok := groups[key]
		if !ok {
			g = &summaryGroup{key: key}
			groups[key] = g
			order = append(order, key)
		}
		g.flows = append(g.flows, r.Flow())
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].density != order[j].density {
			return order[i].density < order[j].density
		}
		return order[i].distracted < order[j].distracted
	})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(summaryHeader); err != nil {
		return err
	}
	for _, key := range order {
		flows := groups[key].flows
		mean, std, min, max := stats(flows)
		row := []string{
			formatFloat(key.density), formatFloat(key.distracted),
			formatFloat(mean), formatFloat(std), formatFloat(min), formatFloat(max),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func stats(xs []float64) (mean, std, min, max float64) {
	if len(xs) == 0 {
		return 0, 0, 0, 0
	}
	min, max = xs[0], xs[0]
	sum := 0.0
	for _, x := range xs {
		sum += x
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	mean = sum / float64(len(xs))
	variance := 0.0
	for _, x := range xs {
		variance += (x - mean) * (x - mean)
	}
	variance /= float64(len(xs))
	std = math.Sqrt(variance)
	return mean, std, min, max
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
