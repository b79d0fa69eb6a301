package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/pipeline"
)

// computeOptions holds the flags shared by the root and compute commands.
type computeOptions struct {
	steps bool
}

func (o *computeOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.steps, "steps", true, "print the calculation process of every level")
}

// computeCommand creates the compute command.
func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOptions{}
	cmd := &cobra.Command{
		Use:   "compute [N]",
		Short: "Calculate G mod N",
		Long: `Calculate G mod N, where G is Graham's number.

The regression battery runs first. N is read from the argument or, when
omitted, prompted for on standard input.`,
		Example: `  gramod compute 1000
  gramod compute --steps=false 2018
  echo 108 | gramod compute`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd, args, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (c *CLI) runCompute(cmd *cobra.Command, args []string, opts computeOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	runner := c.newRunner(logger)
	if err := runner.SelfCheck(); err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		var err error
		if text, err = promptModulus(ctx, cmd.InOrStdin(), out); err != nil {
			return err
		}
	}

	n, err := errors.ParseModulus(text, 0)
	if err != nil {
		return err
	}

	res, err := runner.Compute(ctx, pipeline.Request{Modulus: n, Steps: opts.steps})
	if err != nil {
		return err
	}
	for _, line := range res.Trace {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "G mod %d = %d\n", res.Modulus, res.Residue)
	return nil
}
