// Package stepper evolves a simplified 2-D boundary-layer velocity field
// with an explicit finite-difference scheme.
//
// What:
//
//   - VelocityField holds the u (x-direction) and v (y-direction) components
//     as two ny×nx matrix.Dense buffers; index [j][i] ↔ (i*dx, j*dy).
//   - Stepper.Step advances the field by one time step: forward Euler in time,
//     central differences for the viscous term, first-order upwind-style
//     differences for advection, all read from the previous-step snapshot.
//   - After every step the domain boundary conditions are re-applied:
//     inlet on the left, zero-gradient outflow on the right, zero-gradient
//     bottom row, free stream on the top row; v vanishes on the inlet, top
//     and bottom edges.
//   - Stepper.Run drives exactly GridParameters.Steps steps and notifies
//     observers after each one; Simulate wraps the whole pipeline.
//
// Scheme (interior 1 ≤ j ≤ ny-2, 1 ≤ i ≤ nx-2):
//
//	u' = u + ν·Δt·(∂²u/∂y² + ∂²u/∂x²) − Δt·(u·(u−u_W)/Δx + v·(u−u_S)/Δy)
//	v' = v + ν·Δt·(∂²v/∂y² + ∂²v/∂x²) − Δt·(u·(v−v_W)/Δx + v·(v−v_S)/Δy)
//
// Complexity:
//
//   - Step: O(nx×ny) time, no allocations after New.
//   - Run:  O(Steps×nx×ny).
//
// Concurrency:
//
//   - A Stepper and the field it advances are owned by one caller; they are
//     not safe for concurrent use. WithWorkers parallelises the interior rows
//     of a single step; results are bit-identical to the sequential path.
//
// Errors:
//
//   - ErrGridTooSmall / ErrInvalidParams: rejected GridParameters.
//   - ErrNilField / ErrFieldShape: field does not match the parameters.
//   - ErrNonFinite: optional divergence diagnostic (WithFiniteCheck).
//   - ErrObserver: an observer aborted Run.
//   - ErrOptionViolation: an invalid Option was supplied.
package stepper
