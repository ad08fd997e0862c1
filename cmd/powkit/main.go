// Command powkit computes powers in semigroups, monoids, groups and matrix
// semirings: Fibonacci numbers through 2×2 matrix powers, all-pairs shortest
// paths through tropical matrix powers, and plain integer and numeral powers.
package main

import (
	"context"
	"os"

	"github.com/agbru/powkit/internal/app"
	apperrors "github.com/agbru/powkit/internal/errors"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if app.HasVersionFlag(args[1:]) {
		if err := app.PrintVersion(os.Stdout, false); err != nil {
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	application, err := app.New(args, os.Stderr)
	if err != nil {
		// The flag set has already printed the problem and the usage.
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}
	return application.Run(context.Background(), os.Stdout)
}
