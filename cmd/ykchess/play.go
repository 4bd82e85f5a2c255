package main

import (
	"context"
	"errors"
	"os"

	"github.com/daystram/ykchess/console"
)

func runConsole(ctx context.Context) error {
	err := console.NewInterface(os.Stdin, os.Stdout,
		console.WithHistoryLimit(*historyLimit),
		console.WithParallelPerft(*perftParallel),
	).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
