// PocketChef — a recipe catalog browser for the terminal.
//
// Usage:
//
//	pocketchef [-verbose] [-quiet] [-catalog recipes.yaml] [-export view.xlsx]
//	pocketchef -list [-q text] [-max-time 15] [-max-cost 50] [-difficulty Easy] [-diet Vegan]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/pocketchef/internal/display"
	"github.com/hammamikhairi/pocketchef/internal/domain"
	"github.com/hammamikhairi/pocketchef/internal/engine"
	"github.com/hammamikhairi/pocketchef/internal/export"
	"github.com/hammamikhairi/pocketchef/internal/logger"
	"github.com/hammamikhairi/pocketchef/internal/recipe"
)

// Environment variables supplying flag defaults, usually from .env.
const (
	envCatalog = "POCKETCHEF_CATALOG"
	envExport  = "POCKETCHEF_EXPORT"
	envLogFile = "POCKETCHEF_LOG_FILE"
)

type options struct {
	verbose     bool
	quiet       bool
	logFile     string
	catalog     string
	exportPath  string
	list        bool
	independent bool
	query       string
	maxTime     string
	maxCost     string
	difficulty  string
	diet        string
}

func main() {
	_ = godotenv.Load()

	opts := parseFlags(os.Args[1:])

	// Configure logger.
	logLevel := logger.LevelNormal
	if opts.verbose {
		logLevel = logger.LevelVerbose
	}
	if opts.quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the terminal UI stays clean.
	var logOut io.Writer = os.Stderr
	if opts.logFile != "" && opts.logFile != "stderr" {
		dir := filepath.Dir(opts.logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", opts.logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	if err := run(context.Background(), opts, log, os.Stdout); err != nil {
		log.Error("%v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) options {
	var o options
	fs := flag.NewFlagSet("pocketchef", flag.ExitOnError)
	fs.BoolVar(&o.verbose, "verbose", false, "enable verbose/debug logging")
	fs.BoolVar(&o.quiet, "quiet", false, "disable all logging")
	fs.StringVar(&o.logFile, "log-file", envOr(envLogFile, ".pocketchef/pocketchef.log"), "file to write logs to (use \"stderr\" to log to console)")
	fs.StringVar(&o.catalog, "catalog", os.Getenv(envCatalog), "YAML catalog to use instead of the built-in recipes")
	fs.StringVar(&o.exportPath, "export", os.Getenv(envExport), "write the filtered view to this .xlsx or .csv file (key 'x' in the UI)")
	fs.BoolVar(&o.list, "list", false, "print the filtered view and exit instead of starting the UI")
	fs.BoolVar(&o.independent, "independent", false, "search and filters replace each other instead of combining")
	fs.StringVar(&o.query, "q", "", "initial search text")
	fs.StringVar(&o.maxTime, "max-time", "", "initial time filter in minutes (15, 30, 45)")
	fs.StringVar(&o.maxCost, "max-cost", "", "initial budget filter in rupees (50, 100, 150)")
	fs.StringVar(&o.difficulty, "difficulty", "", "initial level filter (Easy, Medium, Hard)")
	fs.StringVar(&o.diet, "diet", "", "initial diet filter (Vegetarian, Non-Vegetarian, Vegan, High-Protein)")
	fs.Parse(args)
	return o
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(ctx context.Context, o options, log *logger.Logger, stdout io.Writer) error {
	// Wire dependencies.
	var src domain.RecipeSource
	if o.catalog != "" {
		fileSrc, err := recipe.LoadFile(o.catalog, log)
		if err != nil {
			return err
		}
		src = fileSrc
	} else {
		src = recipe.NewMemorySource(log)
	}

	var pageOpts []engine.Option
	if o.independent {
		pageOpts = append(pageOpts, engine.WithIndependentEntryPoints())
	}
	page, err := engine.New(ctx, src, log, pageOpts...)
	if err != nil {
		return err
	}
	bar := engine.NewFilterBar(page.HandleSearch, page.HandleFilterChange)
	if err := applyInitial(bar, o); err != nil {
		return err
	}

	if o.list {
		return list(page, o.exportPath, stdout, log)
	}

	var uiOpts []display.Option
	if o.exportPath != "" {
		uiOpts = append(uiOpts, display.WithExport(o.exportPath, export.Write))
	}
	if err := display.NewUI(page, bar, log, uiOpts...).Run(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// applyInitial seeds the bar from flags, in the same order a user would
// pick them.
func applyInitial(bar *engine.FilterBar, o options) error {
	if o.query != "" {
		bar.SetQuery(o.query)
	}
	initial := []struct {
		axis domain.FilterAxis
		raw  string
	}{
		{domain.AxisMaxTime, o.maxTime},
		{domain.AxisMaxCost, o.maxCost},
		{domain.AxisDifficulty, o.difficulty},
		{domain.AxisDietType, o.diet},
	}
	for _, f := range initial {
		if f.raw == "" {
			continue
		}
		if err := bar.Set(f.axis, f.raw); err != nil {
			return fmt.Errorf("-%s: %w", flagName(f.axis), err)
		}
	}
	return nil
}

func flagName(axis domain.FilterAxis) string {
	switch axis {
	case domain.AxisMaxTime:
		return "max-time"
	case domain.AxisMaxCost:
		return "max-cost"
	case domain.AxisDifficulty:
		return "difficulty"
	default:
		return "diet"
	}
}

// list prints the filtered view and optionally exports it.
func list(page *engine.Page, exportPath string, out io.Writer, log *logger.Logger) error {
	fmt.Fprintln(out, display.RenderGrid(page.Results(), -1, display.TermWidth()))

	if exportPath == "" {
		return nil
	}
	if err := export.Write(exportPath, page.Results()); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Info("exported %d recipes to %s", len(page.Results()), exportPath)
	fmt.Fprintf(out, "exported %d recipes to %s\n", len(page.Results()), exportPath)
	return nil
}
