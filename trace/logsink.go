// SPDX-License-Identifier: MIT

package trace

import "github.com/sirupsen/logrus"

// LogSink logs every event at debug level with structured fields.
type LogSink struct {
	log logrus.FieldLogger
}

// NewLogSink wraps a logrus logger (or entry). A nil logger uses the standard logger.
func NewLogSink(log logrus.FieldLogger) *LogSink {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &LogSink{log: log}
}

// OnSnapshot implements Sink.
func (l *LogSink) OnSnapshot(s Snapshot) {
	rows, cols := s.Dims()
	fields := logrus.Fields{
		"seq":  s.Seq,
		"kind": s.Kind.String(),
		"rows": rows,
		"cols": cols,
	}
	if s.Step != nil {
		fields["step"] = s.StepNumber
		fields["op"] = s.Step.Kind().String()
		fields["column"] = s.Step.Column()
	}
	l.log.WithFields(fields).Debug(s.Label)
}

// OnNote implements Sink.
func (l *LogSink) OnNote(n Note) {
	l.log.WithField("note", n.Kind.String()).Debug(n.Text)
}
