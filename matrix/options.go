// SPDX-License-Identifier: MIT
// Package: matrix
// File: options.go
//
// Purpose:
//   - Functional options for Collect. Options are applied in order over a
//     default configuration; later options override earlier ones.

package matrix

// ReleaseFunc observes one written cell being released during Collect
// cleanup. offset is the flat column-major offset of the cell and v the value
// it held. Called exactly once per written cell, in write order.
type ReleaseFunc func(offset int, v float64)

// collectOptions carries the tunable behavior of Collect.
type collectOptions struct {
	release ReleaseFunc // cleanup hook; never nil after gathering
}

// CollectOption mutates collectOptions.
type CollectOption func(*collectOptions)

// WithReleaseFunc installs fn as the cleanup hook invoked for every cell
// written before an underfill or a source panic. Passing nil panics: a nil
// hook is a programmer error, use the default by omitting the option.
func WithReleaseFunc(fn ReleaseFunc) CollectOption {
	if fn == nil {
		panic("matrix: WithReleaseFunc(nil)")
	}

	return func(o *collectOptions) {
		o.release = fn
	}
}

// gatherCollectOptions folds opts over the defaults.
func gatherCollectOptions(opts ...CollectOption) collectOptions {
	cfg := collectOptions{
		release: func(int, float64) {}, // default: no observable cleanup
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
