// Package main is the entry point for fzpool, a fuzzy line filter: every
// stdin line is scored against the query and matches are printed in
// descending score order.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/fzpool/fzpool"
	"github.com/fzpool/fzpool/fuzzy"
	"github.com/fzpool/fzpool/metrics"
	"github.com/fzpool/fzpool/ranked"
)

var version = "dev"

// maxLineBytes bounds a single input line; longer lines abort the run.
const maxLineBytes = 1024 * 1024

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fzpool", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		workers     = fs.Uint("workers", 0, "number of scoring workers (0 runs single-threaded)")
		caseFlag    = fs.String("case", "smart", "case sensitivity: smart, ignore or respect")
		normalize   = fs.Bool("normalize", false, "fold latin diacritics before matching")
		exact       = fs.Bool("exact", false, "match terms as literal substrings instead of fuzzily")
		colorize    = fs.Bool("color", false, "highlight scores in the output")
		table       = fs.Bool("table", false, "render results as a table")
		stats       = fs.Bool("stats", false, "print pool statistics to stderr after the run")
		showVersion = fs.Bool("version", false, "print version and exit")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, `fzpool - filter stdin lines by fuzzy match score

Usage:
  fzpool [options] <query>

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Examples:
  # keep lines matching "fb", best match first
  cat candidates.txt | fzpool fb

  # score on 8 workers, case-insensitive
  cat candidates.txt | fzpool -workers 8 -case ignore fb
`)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "fzpool %s\n", version)
		return 0
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	mode, err := parseCaseMode(*caseFlag)
	if err != nil {
		fmt.Fprintln(stderr, "fzpool:", err)
		return 2
	}

	pattern, err := fuzzy.ParsePattern(mode, *normalize, fs.Arg(0), !*exact)
	if err != nil {
		fmt.Fprintln(stderr, "fzpool:", err)
		return 1
	}

	results := ranked.New()
	provider := metrics.NewInMemory()

	if *workers == 0 {
		err = filterSerial(stdin, pattern, results)
	} else {
		err = filterParallel(stdin, pattern, results, *workers, provider)
	}
	if err != nil {
		fmt.Fprintln(stderr, "fzpool:", err)
		return 1
	}

	if *table {
		if err := renderTable(stdout, results); err != nil {
			fmt.Fprintln(stderr, "fzpool:", err)
			return 1
		}
	} else {
		printPlain(stdout, results, *colorize)
	}

	if *stats && *workers > 0 {
		renderStats(stderr, provider)
	}
	return 0
}

func parseCaseMode(s string) (fuzzy.CaseMode, error) {
	switch s {
	case "smart":
		return fuzzy.CaseSmart, nil
	case "ignore":
		return fuzzy.CaseIgnore, nil
	case "respect":
		return fuzzy.CaseRespect, nil
	}
	return 0, fmt.Errorf("unknown case mode %q (want smart, ignore or respect)", s)
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return sc
}

// filterSerial is the single-threaded path: one slab, score inline, insert
// inline. No pool involved.
func filterSerial(stdin io.Reader, pattern *fuzzy.Pattern, results *ranked.List) error {
	slab := fuzzy.NewDefaultSlab()
	scanner := newLineScanner(stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if score := fuzzy.Score(line, pattern, slab); score > 0 {
			results.Insert(line, score)
		}
	}
	return scanner.Err()
}

// filterParallel submits one task per line to a scoring pool. The collector
// list is guarded by a local mutex; workers only contend on it after a
// positive score.
func filterParallel(stdin io.Reader, pattern *fuzzy.Pattern, results *ranked.List, workers uint, provider metrics.Provider) error {
	pool, err := fzpool.New(
		fzpool.WithWorkers(workers),
		fzpool.WithMetrics(provider),
	)
	if err != nil {
		return err
	}
	defer pool.Destroy()

	var mu sync.Mutex
	collect := func(text string, p *fuzzy.Pattern, slab *fuzzy.Slab) {
		if score := fuzzy.Score(text, p, slab); score > 0 {
			mu.Lock()
			results.Insert(text, score)
			mu.Unlock()
		}
	}

	scanner := newLineScanner(stdin)
	for scanner.Scan() {
		if err := pool.Submit(collect, scanner.Text(), pattern); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	pool.Wait()
	return nil
}

func printPlain(w io.Writer, results *ranked.List, colorize bool) {
	out := bufio.NewWriter(w)
	defer out.Flush()

	scoreColor := color.New(color.FgGreen)
	for text, score := range results.All() {
		if colorize {
			fmt.Fprintf(out, "%s (%s)\n", text, scoreColor.Sprintf("%d", score))
		} else {
			fmt.Fprintf(out, "%s (%d)\n", text, score)
		}
	}
}

func renderTable(w io.Writer, results *ranked.List) error {
	table := tablewriter.NewWriter(w)
	table.Header("Line", "Score")
	for text, score := range results.All() {
		if err := table.Append(text, strconv.Itoa(score)); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderStats(w io.Writer, m *metrics.InMemory) {
	exec := m.HistogramSummary("task_exec_seconds")

	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	_ = table.Append("tasks submitted", strconv.FormatInt(m.CounterValue("tasks_submitted"), 10))
	_ = table.Append("tasks executed", strconv.FormatInt(m.CounterValue("tasks_executed"), 10))
	_ = table.Append("tasks discarded", strconv.FormatInt(m.CounterValue("tasks_discarded"), 10))
	_ = table.Append("exec time mean", fmt.Sprintf("%.6fs", exec.Mean))
	_ = table.Append("exec time max", fmt.Sprintf("%.6fs", exec.Max))
	if err := table.Render(); err != nil {
		fmt.Fprintln(w, "fzpool: rendering stats table:", err)
	}
}
