// Command gramod computes Graham's number modulo N.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/gramod/internal/cli"
	gerrors "github.com/matzehuels/gramod/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(130) // interrupted
	default:
		fmt.Fprintf(os.Stderr, "%s %s\n", cli.StyleError.Render("error:"), gerrors.UserMessage(err))
		os.Exit(1)
	}
}
