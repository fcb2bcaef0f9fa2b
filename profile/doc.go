// Package profile extracts boundary-layer diagnostics from a simulated
// u-velocity field.
//
// What:
//
//   - Linspace / NearestIndex: coordinate vectors and nearest-point lookup.
//   - VelocityProfile: the u(y) column at the grid point nearest to a chosen x.
//   - Profiles: several such columns at once (DefaultPositions).
//   - Thickness: per column, the y of the first row (scanning from row 0)
//     where u reaches a threshold (DefaultThreshold = 0.99).
//   - WallGradient: per column, the one-sided difference (u[1]-u[0])/(y[1]-y[0]).
//
// Inputs are the ny×nx u buffer of a stepper.VelocityField together with the
// x (length nx) and y (length ny) coordinate vectors returned by
// stepper.Simulate. Nothing here mutates its inputs.
//
// Errors:
//
//   - ErrEmpty: an empty coordinate vector.
//   - ErrLengthMismatch: coordinates disagree with the field shape.
//   - ErrThresholdNotReached: a column never reaches the thickness threshold.
package profile
