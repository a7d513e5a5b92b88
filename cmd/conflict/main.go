package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/simonhull/firebird-suite/conflict/internal/commands"
	"github.com/simonhull/firebird-suite/conflict/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.ApplyCmd())
	rootCmd.AddCommand(commands.DiffCmd())
	rootCmd.AddCommand(commands.ConfigCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
