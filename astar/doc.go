// Package astar records A* search between two nodes of a core.Graph as a
// step.Step sequence, together with a summary Result.
//
// h(node) is the node's heuristic weight (core.Node.Weight). Every node
// should carry one before a run; RequireHeuristics checks this, and AStar
// itself treats a missing heuristic as 0.
//
// Open set ordering: nodes are kept in the order they were first added.
// Updating a node's score leaves it in place, and selection takes the first
// node holding the minimal f. Ties are therefore broken by first discovery,
// never by node ID.
//
// Failure is data, not an error: a missing start or target, or an exhausted
// open set, yields Result.PathFound == false, TotalCost == +Inf and a
// narrating step. The only error AStar returns is ErrGraphNil.
package astar
