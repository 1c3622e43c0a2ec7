// SPDX-License-Identifier: MIT

package trace

// Sink consumes trace events. Methods are called synchronously by a single
// producer, in the exact order the operations happen.
type Sink interface {
	OnSnapshot(s Snapshot)
	OnNote(n Note)
}

type discard struct{}

func (discard) OnSnapshot(Snapshot) {}
func (discard) OnNote(Note)         {}

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

type multi []Sink

func (m multi) OnSnapshot(s Snapshot) {
	for _, sink := range m {
		sink.OnSnapshot(s)
	}
}

func (m multi) OnNote(n Note) {
	for _, sink := range m {
		sink.OnNote(n)
	}
}

// Multi fans every event out to sinks in argument order. Nil sinks are skipped;
// with no usable sink it returns Discard.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	switch len(out) {
	case 0:
		return Discard
	case 1:
		return out[0]
	default:
		return out
	}
}

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}

	return s
}
