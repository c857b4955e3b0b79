// Command lockstress hammers locked containers from many goroutines and
// reports what it observed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

var (
	configPath  = flag.String("config", "", "path to a TOML file with defaults for command flags")
	development = flag.Bool("dev", false, "human readable debug logging")
)

func main() {
	cfg := defaultConfig()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&stressCmd{cfg: cfg}, "")
	subcommands.Register(&fillCmd{cfg: cfg}, "")
	subcommands.Register(&contentionCmd{cfg: cfg}, "")

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	os.Exit(int(run(cfg)))
}

func run(cfg *config) subcommands.ExitStatus {
	if *configPath != "" {
		if err := cfg.load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "loading config %q: %v\n", *configPath, err)

			return subcommands.ExitUsageError
		}
	}

	l, err := newLogger(*development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)

		return subcommands.ExitFailure
	}
	defer func() {
		_ = l.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return subcommands.Execute(ctx, l)
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

// loggerFrom extracts the logger main passes to every command
func loggerFrom(args []any) *zap.Logger {
	if len(args) > 0 {
		if l, ok := args[0].(*zap.Logger); ok {
			return l
		}
	}

	return zap.NewNop()
}
