// SPDX-License-Identifier: MIT

package stepper

import "golang.org/x/sync/errgroup"

// parallelRows executes fn for each j in [start,end). With more than one
// worker the range is split into contiguous chunks, one goroutine each.
// fn must only write row j, so chunks never overlap.
func parallelRows(start, end, workers int, fn func(j int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if workers <= 1 {
		for j := start; j < end; j++ {
			fn(j)
		}
		return
	}
	if workers > total {
		workers = total
	}

	chunk := (total + workers - 1) / workers
	var g errgroup.Group
	for s := start; s < end; s += chunk {
		s := s
		e := min(s+chunk, end)
		g.Go(func() error {
			for j := s; j < e; j++ {
				fn(j)
			}
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail
}
