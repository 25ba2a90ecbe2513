// Package simplex is a combinatorial triangulation data structure for
// abstract simplicial complexes of arbitrary dimension.
//
// What is a triangulation data structure?
//
//	A pure d-dimensional pseudo-manifold: full cells (d-simplices) glued
//	along their facets so that every facet is shared by exactly two full
//	cells and the complex stays connected. Vertices, edges, triangles and
//	every face in between are never stored — they are derived on demand
//	from full-cell/vertex incidence and the neighbor relation.
//
// This module is purely combinatorial: no geometric predicate,
// coordinate, or point type lives here. Vertex and full-cell payloads
// are opaque values the structure moves but never interprets.
//
// Under the hood, everything is organized under narrow subpackages:
//
//	handle/     — handle-stable slab pool (C1)
//	tds/        — Vertex, FullCell, the TDS container, face/facet/rotor
//	            algebra, and structural validation
//	walk/       — breadth-first gathering engine and incidence queries
//	hole/       — star-replacement hole insertion, its point/face/facet
//	            insertion drivers, and face collapse
//	dimension/  — dimension increase (coning) and decrease
//	codec/      — bit-exact combinatorial serialization bridge
//	construct/  — deterministic fixture builders for tests and the CLI
//	cmd/simplex — a CLI that builds, validates and round-trips a
//	            triangulation through the codec
//
// Non-goals: thread-safe concurrent modification, persistence, repair of
// topologically invalid inputs, geometric predicates, and any
// higher-level Delaunay/regular triangulation algorithm built on top of
// this structure.
//
//	go get github.com/katalvlaran/simplex/tds
package simplex
