// Package stream broadcasts velocity fields to websocket clients while a
// simulation runs.
//
// A Hub is an http.Handler and a stepper.Observer at the same time: mount it
// on a route, register it with stepper.WithObserver, and every Every-th step
// is pushed to all connected clients as one JSON Frame. A client connecting
// mid-run first receives the most recent frame.
//
// Writes to a connection are serialized by a per-connection mutex; a client
// whose write fails is closed and dropped without interrupting the run.
package stream
