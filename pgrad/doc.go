// Package pgrad models the idealized transition from a favorable to an
// adverse pressure gradient and the matching boundary-layer thickness.
//
// The curves are closed-form and carry no rendering: a caller evaluates them
// over a domain (DefaultDomain is 1000 points on [0, 10]) for a transition
// parameter t in [0, 1], either one value at a time (Sample, Snap for
// slider-style input) or as an evenly spaced sequence of frames (Transition).
//
//	Favorable(x)    = -0.1x + 2
//	Adverse(x, t)   = -0.1(1-t)x + 2 + 0.1 t x²
//	Thickness(x, t) = 0.1(1-t)√x + 0.2 t (x-5)²/25
//
// At t = 0 Adverse coincides with Favorable.
package pgrad
