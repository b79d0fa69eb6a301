package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/tower"
)

// checkCommand creates the check command, which runs the regression battery.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the regression battery of known residues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runCheck(cmd)
		},
	}
}

func (c *CLI) runCheck(cmd *cobra.Command) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()
	prog := newProgress(logger)

	printTitle(out, "Known residues of G")
	failed := 0
	for _, k := range tower.Known {
		got, err := tower.Reduce(k.Base, k.Modulus, nil)
		switch {
		case err != nil:
			failed++
			printError(out, "G mod %d: %s", k.Modulus, errors.UserMessage(err))
		case got != k.Residue:
			failed++
			printError(out, "G mod %d = %d, want %d", k.Modulus, got, k.Residue)
		default:
			printSuccess(out, "G mod %d = %d", k.Modulus, got)
		}
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeSelfCheck, "%d of %d known residues failed", failed, len(tower.Known))
	}
	printDetail(out, "%d cases passed", len(tower.Known))
	prog.done("Self-check passed")
	return nil
}
