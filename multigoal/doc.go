// Package multigoal runs one best-first search from a start node that
// discovers paths to many goal nodes at once.
//
// The frontier is keyed by f = g + h, where h is the smallest Manhattan
// distance to a goal that has not been reached yet (0 once every goal is
// reached). h is evaluated when an entry is pushed, so it shrinks the
// frontier toward whichever goals remain.
//
// A goal is claimed the first time its node is expanded, with the path and
// cost known at that moment. Claimed goals are never revisited. Because h
// changes as goals are claimed, a node can be closed before its cheapest
// route is known, so a recorded cost can exceed the true optimum. It is
// never below it.
//
// The search runs until the frontier is exhausted, not until every goal is
// claimed. Result.Goals is sorted by cost with coordinate order breaking ties.
// Unreachable goals are simply absent from the result.
package multigoal
