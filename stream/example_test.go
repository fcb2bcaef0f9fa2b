package stream_test

import (
	"log"
	"net/http"

	"github.com/katalvlaran/blayer/stepper"
	"github.com/katalvlaran/blayer/stream"
)

// ExampleHub serves frames on /ws while the reference simulation runs,
// pushing every tenth step.
func ExampleHub() {
	hub, err := stream.NewHub(stream.WithEvery(10))
	if err != nil {
		log.Fatal(err)
	}
	defer hub.Close()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	go func() { _ = http.ListenAndServe("localhost:8080", mux) }()

	if _, err = stepper.Simulate(stepper.DefaultParams(), stepper.WithObserver(hub)); err != nil {
		log.Fatal(err)
	}
}
