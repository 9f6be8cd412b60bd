// Command fixbench measures the accuracy, throughput and determinism of the
// fixed-point kernel.
package main

import (
	"context"
	"os"

	"github.com/agbru/fixpoint/internal/app"
	apperrors "github.com/agbru/fixpoint/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitCode(err))
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
