package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/Harshitk-cp/emgine/internal/buildconfig"
	"github.com/Harshitk-cp/emgine/internal/config"
	"github.com/Harshitk-cp/emgine/internal/diag"
	"github.com/Harshitk-cp/emgine/internal/journal"
	"github.com/Harshitk-cp/emgine/internal/scenario"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := config.Load(); err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "path to a scenario YAML file")
	runName := fs.String("run", "", "run name recorded in the journal (default: scenario name and time)")
	journalPath := fs.String("journal", config.JournalPath(), "sqlite journal path")
	noJournal := fs.Bool("no-journal", false, "replay without recording")
	listRuns := fs.Bool("runs", false, "list recorded runs and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := newLogger(config.LogLevel())
	if err != nil {
		fmt.Fprintf(stderr, "init logger: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *listRuns {
		return printRuns(ctx, *journalPath, stdout, stderr)
	}
	if *scenarioPath == "" {
		fmt.Fprintln(stderr, "usage: replay -scenario path/to/scenario.yaml [-run name] [-journal path] [-no-journal]")
		fmt.Fprintln(stderr, "       replay -runs [-journal path]")
		return 2
	}

	s, err := scenario.Load(*scenarioPath)
	if err != nil {
		fmt.Fprintf(stderr, "load scenario: %v\n", err)
		return 2
	}

	name := *runName
	if name == "" {
		base := s.Name
		if base == "" {
			base = "scenario"
		}
		name = fmt.Sprintf("%s-%s", base, time.Now().UTC().Format("20060102T150405"))
	}

	var rec scenario.Recorder
	if !*noJournal {
		j, err := journal.Open(*journalPath)
		if err != nil {
			fmt.Fprintf(stderr, "open journal: %v\n", err)
			return 2
		}
		defer j.Close()
		rec = j
	}

	reporter := diag.NewZapReporter(logger.With(zap.String("run", name)))
	start := time.Now()
	report, err := scenario.Run(ctx, s, name, rec, reporter)
	if err != nil {
		logger.Error("replay failed", zap.String("run", name), zap.Error(err))
		fmt.Fprintf(stderr, "replay: %v\n", err)
		return 1
	}
	logger.Info("replay finished",
		zap.String("run", name),
		zap.Int("steps", report.Steps),
		zap.Int("elicited", report.Elicited),
		zap.Duration("elapsed", time.Since(start)),
	)

	printReport(stdout, report)
	if !*noJournal {
		if fi, err := os.Stat(*journalPath); err == nil {
			fmt.Fprintf(stdout, "journal     %s (%s)\n", *journalPath, humanize.Bytes(uint64(fi.Size())))
		}
	}
	return 0
}

func printReport(w io.Writer, r *scenario.Report) {
	info := buildconfig.VersionInfo()
	fmt.Fprintf(w, "run         %s (emgine %s, %s)\n", r.Run, info["version"], info["commit"])
	fmt.Fprintf(w, "steps       %s\n", humanize.Comma(int64(r.Steps)))
	fmt.Fprintf(w, "appraisals  %s, %s elicited\n", humanize.Comma(int64(r.Appraisals)), humanize.Comma(int64(r.Elicited)))
	fmt.Fprintf(w, "world       %s\n", r.World)
	fmt.Fprintf(w, "attention   %ss\n", humanize.Ftoa(float64(r.TimeAttended)))
	fmt.Fprintf(w, "attachment  %d\n", r.Attachment)

	channels := make([]string, 0, len(r.Intensities))
	for ch := range r.Intensities {
		channels = append(channels, ch)
	}
	sort.Strings(channels)
	for _, ch := range channels {
		if v := r.Intensities[ch]; v != 0 {
			fmt.Fprintf(w, "  %-10s %s\n", ch, humanize.FtoaWithDigits(v, 3))
		}
	}

	if len(r.Diagnostics) > 0 {
		fmt.Fprintf(w, "diagnostics %s\n", humanize.Comma(int64(len(r.Diagnostics))))
		for _, d := range r.Diagnostics {
			fmt.Fprintf(w, "  %s %v\n", d.Code, d.Args)
		}
	}
}

func printRuns(ctx context.Context, path string, stdout, stderr io.Writer) int {
	j, err := journal.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "open journal: %v\n", err)
		return 2
	}
	defer j.Close()

	runs, err := j.Runs(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "list runs: %v\n", err)
		return 1
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "no runs recorded")
		return 0
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%-32s %s entries, %s elicited, %s\n",
			r.Run,
			humanize.Comma(int64(r.Entries)),
			humanize.Comma(int64(r.Elicited)),
			humanize.Time(time.Unix(0, r.Started)),
		)
	}
	return 0
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	// Keep stdout for the summary.
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
