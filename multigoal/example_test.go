package multigoal_test

import (
	"fmt"

	"github.com/katalvlaran/mallpath/builder"
	"github.com/katalvlaran/mallpath/core"
	"github.com/katalvlaran/mallpath/multigoal"
)

// ExamplePlan resolves two stores in a single pass.
func ExamplePlan() {
	b, _ := builder.NewBuilding(3, 5, 1)
	g := b.Graph()
	start := g.MustID(core.Coord{Row: 1, Col: 2})
	west := g.MustID(core.Coord{Row: 1, Col: 0})
	east := g.MustID(core.Coord{Row: 0, Col: 4})

	res, _ := multigoal.Plan(g, start, []core.NodeID{east, west})
	for _, gr := range res.Goals {
		fmt.Printf("%s cost=%.0f\n", g.Coord(gr.Goal), gr.Cost)
	}
	// Output:
	// (1,0,0) cost=2
	// (0,4,0) cost=3
}
