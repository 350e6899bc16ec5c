package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"masterlist/internal/build"
	"masterlist/internal/catalog"
	"masterlist/internal/config"
	"masterlist/internal/report"
	"masterlist/internal/source"
)

func main() {
	app := &cli.App{
		Name:  "masterlist",
		Usage: "Build the audio-drama masterlist JSON from a published spreadsheet.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the TOML config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "Fetch the sheet and write the catalog JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "sheet CSV URL or local CSV path (overrides config)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file path (overrides config)",
					},
				},
				Action: runBuild,
			},
			{
				Name:      "stats",
				Usage:     "Print the summary table for an existing catalog file",
				ArgsUsage: "[catalog.json]",
				Action:    runStats,
			},
			{
				Name:  "config",
				Usage: "Configuration helpers",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "Write a sample config file",
						Action: runConfigInit,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func runBuild(c *cli.Context) error {
	// Best effort; a missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if v := c.String("url"); v != "" {
		cfg.SheetURL = v
	}
	if v := c.String("output"); v != "" {
		cfg.OutputPath = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	runner := &build.Runner{Source: source.New(cfg.SheetURL, cfg.FetchTimeout())}

	var result *build.Result
	run := func(ctx context.Context) error {
		var err error
		result, err = runner.Run(ctx)
		return err
	}

	ctx := context.Background()
	if isatty.IsTerminal(os.Stdout.Fd()) {
		err = spinner.New().Title("Building masterlist...").Context(ctx).ActionWithErr(run).Run()
	} else {
		err = run(ctx)
	}
	if err != nil {
		return err
	}

	if err := result.Catalog.WriteFile(cfg.OutputPath); err != nil {
		return err
	}

	printSummary(result.Catalog.Stats(), result.Skipped)
	fmt.Printf("Catalog written to %s\n", cfg.OutputPath)
	return nil
}

func runStats(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return err
		}
		path = cfg.OutputPath
	}

	cat, err := catalog.ReadFile(path)
	if err != nil {
		return err
	}

	printSummary(cat.Stats(), 0)
	return nil
}

func runConfigInit(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		path = config.DefaultPath
	}
	if err := config.CreateSample(path); err != nil {
		return err
	}
	fmt.Printf("Sample config written to %s\n", path)
	return nil
}

func printSummary(stats catalog.Stats, skipped int) {
	fmt.Println(report.Summary(stats))
	fmt.Printf("large collabs: %d\n", stats.LargeCollabs)
	if skipped > 0 {
		fmt.Printf("skipped rows: %d\n", skipped)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
