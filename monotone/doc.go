// Package monotone implements the sweep-line structure known as the
// Monotonizer: it tracks which outline segments are "active" at a moving
// scan coordinate and answers point-in-polygon queries against that
// active set.
//
// The structure carries two explicit dirty flags rather than eagerly
// resorting on every mutation: cluster order and active order invalidate
// independently, and each public query forces only the sort it needs.
// There is no separate cluster-position flag: the cluster position is
// rebuilt whenever the clusters are re-sorted.
package monotone
