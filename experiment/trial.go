package experiment

import (
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mallpath/agent"
	"github.com/katalvlaran/mallpath/config"
	"github.com/katalvlaran/mallpath/core"
)

// Trial is one agent run on one generated facility.
type Trial struct {
	RunID      uuid.UUID
	Seed       int64
	Layout     config.Layout
	Key        string // agent key, e.g. "astar"
	Algorithm  string // agent display name, e.g. "A*"
	Found      bool
	Expansions int
	Length     int
	Cost       float64
	Optimal    float64 // Dijkstra cost start→goal store
	Visited    int
	Skipped    int
	Replans    int
	Elapsed    time.Duration
	End        core.Coord
	Ended      bool // false when the path was empty
	Err        string
}

func newTrial(id uuid.UUID, seed int64, l config.Layout, key, name string,
	g *core.Graph, res agent.Result, optimal float64) Trial {
	t := Trial{
		RunID:      id,
		Seed:       seed,
		Layout:     l,
		Key:        key,
		Algorithm:  name,
		Found:      res.Found,
		Expansions: res.Expansions,
		Length:     res.Length,
		Cost:       res.Cost,
		Optimal:    optimal,
		Visited:    len(res.Visited),
		Skipped:    len(res.Skipped),
		Replans:    res.Replans,
		Elapsed:    res.Elapsed,
	}
	if end := res.End(); end != core.None {
		t.End, t.Ended = g.Coord(end), true
	}
	return t
}

// Detour is Cost over Optimal; 0 when the run failed or the start holds the item.
func (t Trial) Detour() float64 {
	if !t.Found || t.Optimal == 0 {
		return 0
	}
	return t.Cost / t.Optimal
}

// Summary aggregates the trials of one (algorithm, layout) group.
type Summary struct {
	Algorithm      string
	Layout         config.Layout
	Trials         int
	SuccessRate    float64
	MeanLength     float64
	MeanCost       float64
	StdCost        float64
	MeanExpansions float64
	StdExpansions  float64
	MeanDetour     float64
	MeanElapsed    time.Duration
}

type groupKey struct {
	algorithm string
	layout    config.Layout
}

// Summarize groups trials by algorithm and layout, in order of first
// appearance. Detour is averaged over successful trials only.
func Summarize(trials []Trial) []Summary {
	var order []groupKey
	groups := make(map[groupKey][]Trial)
	for _, t := range trials {
		k := groupKey{algorithm: t.Algorithm, layout: t.Layout}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		ts := groups[k]
		n := len(ts)
		lengths := make([]float64, n)
		costs := make([]float64, n)
		expansions := make([]float64, n)
		elapsed := make([]float64, n)
		var detours []float64
		found := 0
		for i, t := range ts {
			lengths[i] = float64(t.Length)
			costs[i] = t.Cost
			expansions[i] = float64(t.Expansions)
			elapsed[i] = float64(t.Elapsed)
			if t.Found {
				found++
				if d := t.Detour(); d > 0 {
					detours = append(detours, d)
				}
			}
		}

		s := Summary{
			Algorithm:   k.algorithm,
			Layout:      k.layout,
			Trials:      n,
			SuccessRate: float64(found) / float64(n),
			MeanLength:  stat.Mean(lengths, nil),
			MeanElapsed: time.Duration(stat.Mean(elapsed, nil)),
		}
		s.MeanCost, s.StdCost = meanStd(costs)
		s.MeanExpansions, s.StdExpansions = meanStd(expansions)
		if len(detours) > 0 {
			s.MeanDetour = stat.Mean(detours, nil)
		}
		out = append(out, s)
	}
	return out
}

// meanStd returns the mean and sample standard deviation; one sample has
// zero spread.
func meanStd(x []float64) (mean, std float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}
