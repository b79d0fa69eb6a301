package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/render"
)

// graphCommand creates the graph command, which draws the orbit of every level.
func (c *CLI) graphCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "graph N",
		Short: "Draw the orbits walked while reducing G mod N",
		Long: `Draw the orbit of n -> 3n at every reduction level as a Graphviz diagram.

The format follows the extension of --output (.svg or .dot). Without
--output, DOT source is written to standard output. N above the configured
maximum is clamped, since the diagram grows with N.`,
		Example: `  gramod graph 108 -o orbit.svg
  gramod graph 127 | dot -Tpng > orbit.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.svg or .dot)")
	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, text, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	n, err := errors.ParseModulus(text, c.Config.MaxModulus)
	if err != nil {
		return err
	}
	if n == c.Config.MaxModulus && strings.TrimSpace(text) != strconv.Itoa(n) {
		printWarning(cmd.ErrOrStderr(), "N clamped to %d", n)
	}
	logger.Debug("graph", "modulus", n, "output", output)

	if output == "" {
		dot, err := render.ToDOT(c.Config.Base, n)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), dot)
		return err
	}

	format, err := render.FormatFromPath(output)
	if err != nil {
		return err
	}

	out := cmd.ErrOrStderr()
	spinner := newSpinner(ctx, out, "Rendering orbits...")
	spinner.Start()
	data, err := render.Render(ctx, c.Config.Base, n, format)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		spinner.StopWithError("Write failed")
		return fmt.Errorf("write %s: %w", output, err)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Rendered G mod %d", n))
	printFile(out, output)
	return nil
}
