// SPDX-License-Identifier: MIT

// Package cli implements the rowreduce command tree.
//
// Each subcommand follows the Options pattern: flags fill an Options value,
// Complete derives inputs from flags, files and arguments, Validate checks
// them, and Run performs the work writing to Out.
package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rowreduce/config"
)

// Context carries what every subcommand shares.
type Context struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	Viper  *viper.Viper
	Config *config.Config
	Log    *logrus.Logger
}

// NewContext wires the streams and a fresh viper instance.
func NewContext(in io.Reader, out, errOut io.Writer) *Context {
	log := logrus.New()
	log.Out = errOut

	return &Context{In: in, Out: out, ErrOut: errOut, Viper: config.New(), Log: log}
}

// NewRootCommand builds "rowreduce" with its subcommands.
func NewRootCommand(cxt *Context) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "rowreduce",
		Short: "Solve linear systems by Gaussian elimination, step by step",
		Long: `rowreduce reduces the augmented matrix [A|b] to row-echelon (ref) or
reduced row-echelon (rref) form, printing every elementary row operation,
then classifies the system and reports its solution.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cxt.load()
		},
	}
	cmd.SetIn(cxt.In)
	cmd.SetOut(cxt.Out)
	cmd.SetErr(cxt.ErrOut)

	if err := config.AddFlags(cmd.PersistentFlags(), cxt.Viper); err != nil {
		return nil, err
	}

	cmd.AddCommand(NewSolveCommand(cxt))
	cmd.AddCommand(NewEquationsCommand(cxt))

	return cmd, nil
}

func (c *Context) load() error {
	cfg, err := config.Load(c.Viper)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Log.SetLevel(cfg.LogLevel)
	if cfg.File != "" {
		c.Log.WithField("file", cfg.File).Debug("config file loaded")
	}

	return nil
}

// Execute runs the command tree against args and returns the first error.
func Execute(cxt *Context, args []string) error {
	cmd, err := NewRootCommand(cxt)
	if err != nil {
		return err
	}
	cmd.SetArgs(args)

	return cmd.Execute()
}
