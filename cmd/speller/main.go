// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/speller"
	"github.com/poiesic/speller/affix"
	"github.com/poiesic/speller/core"
	"github.com/poiesic/speller/filter"
	"github.com/poiesic/speller/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func affixFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "affix",
		Aliases:  []string{"a"},
		Usage:    "Path to the aspell affix file",
		Required: true,
	}
}

func maxFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "max",
		Usage: "Maximum number of forms generated per stem",
		Value: 1000,
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "speller",
		Usage: "Affix-compressed spell checking dictionaries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "load",
				Usage:  "Load a word list into a dictionary",
				Action: loadCommand,
				Flags: []cli.Flag{
					dbFlag(),
					affixFlag(),
					&cli.StringFlag{
						Name:     "words",
						Aliases:  []string{"w"},
						Usage:    "Word list of word/FLAGS lines, or - for stdin",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of expansion workers",
						Value: speller.DefaultConfig().PoolSize,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of stems written in each batch",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N stems (0 disables)",
						Value: 0,
					},
				},
			},
			{
				Name:      "check",
				Usage:     "List misspelled words in files or stdin",
				ArgsUsage: "[file...]",
				Action:    checkCommand,
				Flags: []cli.Flag{
					dbFlag(),
					affixFlag(),
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Filter mode (none, " + strings.Join(filter.Names(), ", ") + ")",
						Value: speller.FilterNone,
					},
					&cli.IntFlag{
						Name:  "min-length",
						Usage: "Skip words shorter than this",
						Value: 1,
					},
				},
			},
			{
				Name:      "expand",
				Usage:     "Print the forms a root generates with the given flags",
				ArgsUsage: "root [flags]",
				Action:    expandCommand,
				Flags: []cli.Flag{
					affixFlag(),
					maxFlag(),
				},
			},
			{
				Name:   "dump",
				Usage:  "Print every stored stem with its generated forms",
				Action: dumpCommand,
				Flags: []cli.Flag{
					dbFlag(),
					affixFlag(),
					maxFlag(),
				},
			},
		},
	}
}

func loadCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg := speller.NewConfig(
		speller.WithAffixPath(c.String("affix")),
		speller.WithPoolSize(c.Int("pool-size")),
		speller.WithBatchSize(c.Int("batch-size")),
	)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	stems, err := readWordList(c, c.String("words"))
	if err != nil {
		return err
	}

	db, err := speller.Open(c.String("db"), speller.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer db.Close()

	var opts []ingestion.Option
	if interval := c.Int("report-interval"); interval > 0 {
		opts = append(opts, ingestion.WithProgress(c.App.ErrWriter, interval))
	}
	pipeline, err := db.NewIngestionPipeline(opts...)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	if err := pipeline.Ingest(ctx, stems); err != nil {
		return fmt.Errorf("loading failed: %w", err)
	}

	count, err := db.Stems().CountStems(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "loaded %d stems, dictionary holds %d\n", len(stems), count)
	return nil
}

func readWordList(c *cli.Context, path string) ([]*core.Stem, error) {
	if path == "-" {
		return ingestion.ParseWordList(c.App.Reader)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	return ingestion.ParseWordList(f)
}

func checkCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg := speller.NewConfig(
		speller.WithAffixPath(c.String("affix")),
		speller.WithFilterMode(c.String("mode")),
		speller.WithMinWordLength(c.Int("min-length")),
	)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := speller.Open(c.String("db"), speller.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer db.Close()

	checker, err := db.NewChecker()
	if err != nil {
		return err
	}

	check := func(name string, r io.Reader) error {
		text, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		misspellings, err := checker.CheckText(ctx, string(text), nil)
		if err != nil {
			return fmt.Errorf("checking %s: %w", name, err)
		}
		for _, m := range misspellings {
			fmt.Fprintf(c.App.Writer, "%s:%d: %s\n", name, m.Offset, m.Word)
		}
		return nil
	}

	if c.NArg() == 0 {
		return check("-", c.App.Reader)
	}
	for _, path := range c.Args().Slice() {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		err = check(path, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func expandCommand(c *cli.Context) error {
	if c.NArg() < 1 || c.NArg() > 2 {
		return fmt.Errorf("expected a root and optional flags, got %d arguments", c.NArg())
	}

	manager, err := affix.Setup(c.String("affix"))
	if err != nil {
		return err
	}

	forms := manager.Expand(c.Args().Get(0), c.Args().Get(1), c.Int("max"))
	writeForms(c.App.Writer, forms)
	return nil
}

func dumpCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg := speller.NewConfig(
		speller.WithAffixPath(c.String("affix")),
		speller.WithMaxExpansions(c.Int("max")),
	)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := speller.Open(c.String("db"), speller.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	return pipeline.ExpandAll(ctx, func(_ *core.Stem, forms []affix.Expansion) error {
		writeForms(c.App.Writer, forms)
		return nil
	})
}

// writeForms prints forms on one line, root first.
func writeForms(w io.Writer, forms []affix.Expansion) {
	words := make([]string, len(forms))
	for i, f := range forms {
		words[i] = f.Word
	}
	fmt.Fprintln(w, strings.Join(words, " "))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
