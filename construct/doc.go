// Package construct assembles deterministic fixture triangulations for
// tests, examples, and the CLI.
//
// What
//
//   - Constructor applies one deterministic mutation to a *tds.TDS
//     under a resolved Config.
//   - Build is the single orchestrating entry point: it allocates a TDS
//     at the requested ambient dimension and runs every Constructor in
//     order, wrapping the first error with its index.
//   - Sphere and Subdivide are the two fixture shapes this module needs
//     directly: Sphere builds the minimal triangulated d-sphere (d+2
//     vertices, the boundary complex of a (d+1)-simplex) purely through
//     package dimension's Increase, and Subdivide stellar-subdivides
//     every full cell of an existing triangulation through package
//     hole's InsertInFullCell.
//
// Why
//
//   - Every package in this module needs a small, non-degenerate
//     triangulation to test against; Sphere is the cheapest
//     non-degenerate fixture reachable purely from the public dimension
//     API, so building it once here keeps every other package's tests
//     from re-deriving the same construction.
package construct
