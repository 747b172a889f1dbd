package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jucetools/jucer2cmake/internal"
	"github.com/jucetools/jucer2cmake/internal/apperr"
	pkgconfig "github.com/jucetools/jucer2cmake/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return apperr.ErrUsage
	}
	projectFile := cmd.Args().Get(0)
	reprojucerFile := cmd.Args().Get(1)

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if out := cmd.String("output"); out != "" {
		cfg.Output.Filename = out
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithFiles(projectFile, reprojucerFile),
		internal.WithWatch(cmd.Bool("watch")),
	}

	return internal.Run(ctx, opts...)
}

func main() {
	cmd := &cli.Command{
		Name:      "jucer2cmake",
		Usage:     "Translate a Jucer project descriptor into a Reprojucer-based CMakeLists.txt",
		ArgsUsage: "<jucer_project_file> <Reprojucer.cmake_file>",
		Action:    run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "jucer2cmake.yaml",
				Value:       "jucer2cmake.yaml",
				Sources:     cli.EnvVars("JUCER2CMAKE_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Override the output filename",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Regenerate whenever the project file changes",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
