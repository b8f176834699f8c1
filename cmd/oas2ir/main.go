package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oas2ir/cmd/oas2ir/commands"
	"github.com/erraggy/oas2ir/internal/cliutil"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := commands.NewRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		return commands.ExitCode(err)
	}
	return 0
}
