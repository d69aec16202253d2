package astar_test

import (
	"testing"

	"github.com/katalvlaran/mallpath/astar"
	"github.com/katalvlaran/mallpath/builder"
)

// BenchmarkPlan_Mall45 plans from the start to the goal store of a seeded
// five-floor 45×45 facility.
func BenchmarkPlan_Mall45(b *testing.B) {
	m, err := builder.Build(builder.Config{
		Rows: 45, Cols: 45, Floors: 5,
		Elevators: 5, Stairs: 5, StoresPerFloor: 13,
	}, builder.WithSeed(0))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Plan(m.Graph(), m.Start(), m.GoalStore())
	}
}
