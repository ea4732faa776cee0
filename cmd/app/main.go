package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/algiz/internal"
	"github.com/starford/algiz/internal/apperr"
	pkgconfig "github.com/starford/algiz/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.IsSet("watch") {
		cfg.Watch.Enabled = cmd.Bool("watch")
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	return internal.Run(ctx, opts...)
}

func main() {
	cmd := &cli.Command{
		Name:   "algiz",
		Usage:  "Static-site checks: notes cross-link consistency and accessibility linting",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Re-run checks when site files change",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		// Check failures already printed their report; anything else is an
		// operational error worth logging.
		if !errors.Is(err, apperr.ErrChecksFailed) {
			slog.Error("application error", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}
