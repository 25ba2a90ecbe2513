// Package hole implements star-shaped re-triangulation: replacing a
// connected region of full cells (a "hole") by coning every boundary
// facet of the hole to a single new vertex.
//
// What
//
//   - InsertInTaggedHole is the central algorithm: given a vertex v not
//     yet linked into the triangulation and a facet already known to lie
//     on the hole's boundary, it builds one new full cell per boundary
//     facet, apexed at v, wiring every new cell to its neighbors — new
//     cells where two boundary facets are themselves adjacent, or
//     existing cells where a new cell borders the untouched part of the
//     triangulation.
//   - InsertInHole drives InsertInTaggedHole over a hole given as an
//     explicit list of full cells: it tags them visited, delegates, then
//     deletes the tagged cells.
//   - InsertInFullCell, InsertInFace and InsertInFacet are the three
//     named hole shapes: the star of a single cell, of an arbitrary
//     face, and of a single facet.
//   - CollapseFace is the inverse construction: contract a face down to
//     a fresh vertex by re-triangulating its star around that vertex;
//     the face's own vertices are deleted.
//
// Why
//
//   - Coning a hole's boundary ridge by ridge is naturally recursive,
//     recursing once per still-unresolved neighbor. A hole spanning a
//     large region of a high-dimensional triangulation can recurse as
//     deep as the hole has cells; InsertInTaggedHole instead walks an
//     explicit work-list (a LIFO of partially-processed frames) in the
//     same step order a recursive walk would use, so the recursion
//     depth this module needs is O(1) regardless of hole size.
//
// Libraries
//
//   - github.com/emirpasic/gods/stacks/arraystack backs the explicit
//     work-list, mirroring the same library's use for the BFS queue in
//     package walk.
package hole
