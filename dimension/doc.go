// Package dimension implements the two operations that change a
// triangulation's current dimension by exactly one: Increase (coning
// every maximal cell to a new apex, doubling as the very first two
// vertex insertions when the triangulation starts empty or has a single
// vertex) and Decrease (its inverse, contracting a vertex back out).
//
// What
//
//   - Increase dispatches on the dimension being left: -2 (first vertex
//     ever), -1 (second vertex, forming the 0-sphere), and the general
//     case, which extends every maximal cell that does not already
//     contain the distinguished "star" vertex with a twin cell through
//     the new apex, then wires every twin's neighbors via a second BFS
//     pass, then applies an orientation-parity fixup.
//   - Decrease is the exact inverse, dispatching on the dimension being
//     left: -1 (triangulation becomes empty), 0 (down to a single
//     vertex), 1 (down to the 0-sphere) and the general case (collapse
//     every cell incident to the removed vertex).
//
// Why
//
//   - A triangulation's current dimension only ever changes by exactly
//     one step at a time; every other module in this repository assumes
//     AmbientDimension is fixed and CurrentDimension only moves through
//     Increase/Decrease.
//
// Design notes
//
//   - The d=1 branch of Decrease clears all four slots the two
//     surviving "infinite" cells could otherwise be left holding stale
//     references in (each cell's vertex slot 1 and neighbor slot 1),
//     rather than leaving any of them dangling: once current dimension
//     drops to 0, only slot 0 on either cell is meaningful, and leaving
//     a stale slot 1 behind would violate that as soon as anything read
//     it directly during the transition.
package dimension
