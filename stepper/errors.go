// SPDX-License-Identifier: MIT

package stepper

import "errors"

// Sentinel errors for stepper operations.
var (
	// ErrGridTooSmall indicates nx or ny below 3: the stencil needs at least
	// one interior point on each axis.
	ErrGridTooSmall = errors.New("stepper: grid needs at least 3 points per axis")

	// ErrInvalidParams indicates a non-finite or out-of-range scalar parameter.
	ErrInvalidParams = errors.New("stepper: invalid grid parameters")

	// ErrParamsDecode indicates a parameter document could not be decoded.
	ErrParamsDecode = errors.New("stepper: cannot decode parameters")

	// ErrNilField indicates a nil *VelocityField or a nil component buffer.
	ErrNilField = errors.New("stepper: velocity field is nil")

	// ErrFieldShape indicates u and v disagree with each other or with (ny, nx).
	ErrFieldShape = errors.New("stepper: velocity field shape mismatch")

	// ErrNonFinite indicates the explicit scheme diverged (NaN or ±Inf).
	ErrNonFinite = errors.New("stepper: non-finite velocity after step")

	// ErrObserver wraps an error returned by a per-step observer.
	ErrObserver = errors.New("stepper: observer aborted run")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stepper: invalid option supplied")
)
