// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Options never change validation results; they only add side channels.
package matrix

// Option mutates internal options. Setters are applied in order.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	observers []Observer // notified once per construction attempt, in order
}

// WithObserver registers fn to receive one Event per New/FromRows call.
// A nil fn is ignored.
//
// AI-Hints:
//   - Wire this to a structured logger to trace rejected shapes in pipelines.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// gatherOptions applies user setters over zero defaults.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order
		}
	}

	return o
}

// notify delivers ev to every registered observer.
func (o Options) notify(ev Event) {
	for _, fn := range o.observers {
		fn(ev)
	}
}
