// Package blayer simulates the development of a 2-D viscous boundary layer
// on a uniform grid and extracts its diagnostics.
//
// What is in the box?
//
//	stepper/: GridParameters, VelocityField and the explicit finite-difference
//	           Stepper (diffusion + first-order upwind advection, fixed
//	           boundary conditions, optional row-parallel update)
//	matrix/ : the dense row-major float64 buffer the fields are stored in
//	profile/: velocity profiles, 99% thickness and wall gradient
//	pgrad/  : idealized favorable → adverse pressure-gradient transition
//	stream/ : websocket Hub that observes a run and broadcasts frames
//	examples/: runnable reference scenario
//
// Quick start:
//
//	res, err := stepper.Simulate(stepper.DefaultParams())
//	if err != nil { ... }
//	u, _ := profile.VelocityProfile(res.Field.U, res.X, 1.0)
//
// Grid layout:
//
//	row 0      ── free stream (u = Freestream, v = 0)
//	  │
//	column 0 = inlet          column nx-1 = copy of nx-2
//	  │
//	row ny-1   ── zero-gradient copy of row ny-2 (v = 0)
//
// Every step is deterministic: the same parameters produce bit-identical
// fields, with or without worker goroutines.
//
//	go get github.com/katalvlaran/blayer
package blayer
