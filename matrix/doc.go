// Package matrix offers the dense row-major storage used for velocity grids.
//
// The matrix package provides:
//
//   - Dense, a rows×cols float64 buffer with the explicit index formula
//     i*cols + j, bounds-checked At/Set and whole-row/whole-column helpers.
//   - CopyFrom / Clone for double-buffered time stepping: the previous
//     snapshot is copied once per step and never aliased with the output.
//   - Validators (ValidateNotNil, ValidateShape, ValidateSameShape,
//     ValidateFinite) returning the package sentinels.
//   - ToGonum / FromGonum bridges for downstream linear-algebra tooling.
//
// Grid convention: row j ↔ y-coordinate, column i ↔ x-coordinate, so a field
// sampled on ny×nx points is a Dense with Rows()==ny and Cols()==nx.
//
// See the examples in this package and in stepper for usage patterns.
package matrix
