package agent_test

import (
	"fmt"

	"github.com/katalvlaran/mallpath/agent"
	"github.com/katalvlaran/mallpath/builder"
	"github.com/katalvlaran/mallpath/core"
)

// ExampleAStar_Run checks the nearer, empty store before walking on to the
// store that holds the item.
func ExampleAStar_Run() {
	b, _ := builder.NewBuilding(3, 3, 1)
	_ = b.PlaceStart(core.Coord{Row: 0, Col: 0})
	_ = b.PlaceStore(core.Coord{Row: 0, Col: 2})
	_ = b.PlaceStore(core.Coord{Row: 2, Col: 2})
	_ = b.SetGoal(b.Stores()[1])

	res, _ := agent.NewAStar().Run(b.Graph(), b.Start(), b.Stores())
	g := b.Graph()
	for _, id := range res.Visited {
		fmt.Println("visited", g.Coord(id))
	}
	fmt.Printf("found=%v moves=%d cost=%.0f expansions=%d\n", res.Found, res.Length, res.Cost, res.Expansions)
	// Output:
	// visited (0,2,0)
	// visited (2,2,0)
	// found=true moves=4 cost=4 expansions=6
}
