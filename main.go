package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/cbpark/dratcheck/internal/checker"
	"github.com/cbpark/dratcheck/internal/cnfio"
	"github.com/cbpark/dratcheck/internal/dratio"
	"github.com/cbpark/dratcheck/internal/preprocess"
	"github.com/cbpark/dratcheck/internal/progress"
)

var flagRupOnly = flag.Bool(
	"rup-only",
	false,
	"disable the RAT fallback; treat non-RUP additions as refuted",
)

var flagProgress = flag.Bool(
	"progress",
	false,
	"render a progress bar over the proof's lemma count",
)

var flagIgnoreDeletions = flag.Bool(
	"ignore-deletions",
	false,
	"drop all deletion steps during preprocessing",
)

var flagLogLevel = flag.String(
	"log-level",
	"warn",
	"logging verbosity: trace, debug, info, warn, error",
)

type config struct {
	cnfFile         string
	proofFile       string
	rupOnly         bool
	progress        bool
	ignoreDeletions bool
	logLevel        string
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() != 2 {
		return nil, fmt.Errorf("usage: dratcheck [flags] <cnf_file> <proof_file>")
	}
	return &config{
		cnfFile:         flag.Arg(0),
		proofFile:       flag.Arg(1),
		rupOnly:         *flagRupOnly,
		progress:        *flagProgress,
		ignoreDeletions: *flagIgnoreDeletions,
		logLevel:        *flagLogLevel,
	}, nil
}

func run(cfg *config, log hclog.Logger) (checker.Verdict, error) {
	_, formula, err := cnfio.LoadCNF(cfg.cnfFile)
	if err != nil {
		return 0, fmt.Errorf("could not parse formula: %w", err)
	}

	rawSteps, err := dratio.LoadDRAT(cfg.proofFile)
	if err != nil {
		return 0, fmt.Errorf("could not parse proof: %w", err)
	}

	proof := make([]preprocess.RawStep, len(rawSteps))
	for i, s := range rawSteps {
		proof[i] = preprocess.RawStep{Del: s.Del, Literals: s.Literals}
	}

	log.Info("loaded instance", "clauses", len(formula), "proof_steps", len(proof))

	db, view, script := preprocess.Build(formula, proof, cfg.ignoreDeletions, log)

	bar := progress.New(os.Stdout, len(script), cfg.progress)
	flags := checker.Flags{RupOnly: cfg.rupOnly, IgnoreDeletions: cfg.ignoreDeletions}

	d, verdict := checker.NewDriver(db, view, flags, log)
	if verdict == checker.NoConflict {
		verdict = runWithProgress(d, script, bar)
	}
	bar.Finish()

	return verdict, nil
}

// runWithProgress mirrors checker.Driver.Run but ticks bar after each step,
// since the progress bar is an ambient CLI concern the checker package
// itself has no business depending on.
func runWithProgress(d *checker.Driver, script []checker.Lemma, bar *progress.Bar) checker.Verdict {
	for i := range script {
		v, done := d.Step(script[i], i)
		bar.Inc()
		if done {
			return v
		}
	}
	return checker.NoConflict
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := hclog.LevelFromString(cfg.logLevel)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:  "dratcheck",
		Level: level,
	})

	verdict, err := run(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("c verdict: %s\n", verdict)
	if verdict.Verified() {
		fmt.Println("s VERIFIED")
		os.Exit(0)
	}
	fmt.Println("s NOT VERIFIED")
	os.Exit(1)
}
