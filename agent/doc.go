// Package agent wraps the planners in navigation agents that search a
// facility for the one store carrying a target item.
//
// Every agent walks from store to store, accumulating expansions, moves and
// link cost across every leg it travels, decoy stores included, and stops
// at the first store whose HasItem flag is set:
//
//   - AStar and DStarLite try candidates in ascending Manhattan distance
//     from the start (coordinate order breaks ties) and plan one leg per
//     candidate from wherever the agent currently stands.
//   - MultiGoal resolves every remaining candidate in a single multi-goal
//     pass per leg and travels to the cheapest one reached.
//
// An unreachable candidate is skipped, not fatal. Running out of candidates
// is a normal failure: Found is false, Path is empty and the totals so far
// are returned with a nil error. Trail keeps the route actually walked either
// way. WithBudget caps total expansions; exceeding it returns
// ErrBudgetExhausted together with the partial Result, again with an empty Path. A D* Lite
// reconstruction inconsistency is logged and returned to the caller.
package agent
