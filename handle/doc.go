// Package handle provides a handle-stable slab pool.
//
// What
//
//   - Pool[T] hands out Handle values for inserted elements and lets
//     callers erase individual elements without disturbing any other
//     live handle.
//   - Handle zero (Null) is never issued and always denotes "no element".
//   - Iteration (Handles) walks live elements in ascending slot order;
//     a slot freed by erase is reused by a later insert, so this is not
//     allocation order once anything has been erased.
//
// Why
//
//   - tds.TDS needs vertex and full-cell references that survive
//     unrelated inserts and erases across the lifetime of a
//     triangulation — a plain slice index is invalidated by removal, and
//     a map trades that away for O(1) but gives up cheap dense iteration.
//   - A free-list-backed slab gets both: O(1) expected insert/erase and
//     stable integer handles, at the cost of a hole per erased element
//     until it is reused by a later insert.
//
// Complexity
//
//   - Insert, Erase, Get: O(1) amortized.
//   - Handles: O(n) where n is the high-water mark of slots ever used.
package handle
