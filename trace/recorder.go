// SPDX-License-Identifier: MIT

package trace

// Event is one recorded Sink call; exactly one field is non-nil.
type Event struct {
	Snapshot *Snapshot
	Note     *Note
}

// Recorder is an in-memory Sink keeping every event in emission order.
// It is not safe for concurrent use; one solve drives one Recorder.
type Recorder struct {
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// OnSnapshot implements Sink.
func (r *Recorder) OnSnapshot(s Snapshot) {
	r.events = append(r.events, Event{Snapshot: &s})
}

// OnNote implements Sink.
func (r *Recorder) OnNote(n Note) {
	r.events = append(r.events, Event{Note: &n})
}

// Events returns the recorded events in order.
func (r *Recorder) Events() []Event {
	return append([]Event(nil), r.events...)
}

// Snapshots returns the recorded snapshots in order.
func (r *Recorder) Snapshots() []Snapshot {
	var out []Snapshot
	for _, e := range r.events {
		if e.Snapshot != nil {
			out = append(out, *e.Snapshot)
		}
	}

	return out
}

// Notes returns the recorded notes in order.
func (r *Recorder) Notes() []Note {
	var out []Note
	for _, e := range r.events {
		if e.Note != nil {
			out = append(out, *e.Note)
		}
	}

	return out
}

// Steps returns the structural steps in order.
func (r *Recorder) Steps() []Step {
	var out []Step
	for _, e := range r.events {
		if e.Snapshot != nil && e.Snapshot.Step != nil {
			out = append(out, e.Snapshot.Step)
		}
	}

	return out
}

// CountSteps returns how many structural steps of kind k were recorded.
func (r *Recorder) CountSteps(k StepKind) int {
	n := 0
	for _, s := range r.Steps() {
		if s.Kind() == k {
			n++
		}
	}

	return n
}

// Substitutions returns the back-substitution steps in order.
func (r *Recorder) Substitutions() []Substitution {
	var out []Substitution
	for _, e := range r.events {
		if e.Note != nil && e.Note.Substitution != nil {
			out = append(out, *e.Note.Substitution)
		}
	}

	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.events = nil }
