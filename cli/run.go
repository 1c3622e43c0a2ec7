// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rowreduce/config"
	"github.com/katalvlaran/rowreduce/elimination"
	"github.com/katalvlaran/rowreduce/latex"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/matrix/ops"
	"github.com/katalvlaran/rowreduce/numfmt"
	"github.com/katalvlaran/rowreduce/report"
	"github.com/katalvlaran/rowreduce/trace"
)

// system is a linear system ready to solve.
type system struct {
	A         [][]float64
	B         []float64
	Variables []string
}

// solve runs the engine with the sinks required by the configured output and
// writes the result to Out.
func (c *Context) solve(sys system) (*elimination.Result, error) {
	cfg := c.Config
	log := c.Log.WithFields(logrus.Fields{
		"mode":      cfg.Mode.String(),
		"equations": len(sys.A),
		"variables": len(sys.Variables),
	})
	log.Info("solving")

	var (
		text *trace.Writer
		tex  *latex.Renderer
		rec  *trace.Recorder
		out  trace.Sink
	)
	switch cfg.Output {
	case config.OutputText:
		text = trace.NewWriter(c.Out)
		text.SetDigits(cfg.Digits)
		out = text
	case config.OutputLaTeX:
		tex = latex.NewRenderer(latex.WithDigits(cfg.Digits))
		out = tex
	default:
		rec = trace.NewRecorder()
		out = rec
	}

	opts := []elimination.Option{elimination.WithEpsilon(cfg.Epsilon)}
	if len(sys.Variables) > 0 {
		opts = append(opts, elimination.WithVariableNames(sys.Variables...))
	}
	res, err := elimination.Solve(sys.A, sys.B, cfg.Mode, trace.Multi(out, trace.NewLogSink(log)), opts...)
	if err != nil {
		log.WithError(err).Error("solve failed")

		return nil, err
	}
	log.WithFields(logrus.Fields{
		"classification": res.Classification.String(),
		"rank":           res.Rank,
		"augmentedRank":  res.AugmentedRank,
		"steps":          res.Steps,
	}).Info("solved")

	residual, hasResidual := c.residual(sys, res)

	switch {
	case text != nil:
		if err := text.Err(); err != nil {
			return nil, fmt.Errorf("write transcript: %w", err)
		}
		if hasResidual {
			_, err = fmt.Fprintf(c.Out, "\nResidual max|A·x - b| = %s\n", numfmt.Format(residual, 12))
		}
	case tex != nil:
		_, err = tex.WriteTo(c.Out)
	default:
		rep := report.Build(res, rec, cfg.Digits)
		if hasResidual {
			rep.WithResidual(residual)
		}
		var f report.Format
		if f, err = report.ParseFormat(cfg.Output); err == nil {
			err = report.Encode(c.Out, rep, f)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("write %s output: %w", cfg.Output, err)
	}

	return res, nil
}

// residual verifies a unique solution against the input system.
func (c *Context) residual(sys system, res *elimination.Result) (float64, bool) {
	if res.Classification != elimination.UniqueSolution {
		return 0, false
	}
	a, err := matrix.NewDenseFromRows(sys.A)
	if err == nil {
		var r float64
		if r, err = ops.Residual(a, res.Solution, sys.B); err == nil {
			c.Log.WithField("residual", r).Debug("verified solution")

			return r, true
		}
	}
	c.Log.WithError(err).Warn("residual not computed")

	return 0, false
}
