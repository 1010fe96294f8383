// alreplay replays a YAML list workload against an arraylist.List[int64]
// and reports the final length, capacity, growth counters and a BLAKE3
// digest of the deterministic CBOR snapshot.
//
// Two replays of the same workload must give the same digest whatever the
// storage backend or growth factor, which makes the digest a quick
// cross-check between configurations:
//
//	alreplay -w inserts.yaml --allocator heap
//	alreplay -w inserts.yaml --allocator arena --growth 1.5 --expect <digest>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pavanmanishd/arraylist"
	"github.com/pavanmanishd/arraylist/internal/workload"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		workloadPath string
		allocator    string
		growth       float64
		maxSlots     int
		snapshotPath string
		expect       string
		verbose      bool
	)

	flagSet := pflag.NewFlagSet("alreplay", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&workloadPath, "workload", "w", "", "path to the YAML workload (or pass it as the only argument)")
	flagSet.StringVar(&allocator, "allocator", "", "override the storage backend: heap or arena")
	flagSet.Float64Var(&growth, "growth", 0, "override the growth factor (must be > 1)")
	flagSet.IntVar(&maxSlots, "max-slots", 0, "override the slot budget (0 keeps the workload's)")
	flagSet.StringVar(&snapshotPath, "snapshot", "", "write the final CBOR snapshot to this file")
	flagSet.StringVar(&expect, "expect", "", "fail unless the snapshot digest equals this hex digest")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log every reallocation")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}

	rest := flagSet.Args()
	switch {
	case workloadPath == "" && len(rest) == 1:
		workloadPath = rest[0]
	case len(rest) > 0:
		return fmt.Errorf("unexpected argument: %s", rest[0])
	case workloadPath == "":
		return errors.New("no workload given; use --workload or pass a path")
	}

	var want workload.Hash
	if expect != "" {
		var err error
		if want, err = workload.ParseHash(expect); err != nil {
			return err
		}
	}

	w, err := workload.Load(workloadPath)
	if err != nil {
		return err
	}
	if flagSet.Changed("allocator") {
		w.Allocator = allocator
	}
	if flagSet.Changed("growth") {
		w.Growth = growth
	}
	if flagSet.Changed("max-slots") {
		w.MaxSlots = maxSlots
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	arraylist.SetLogger(logger)

	res, err := workload.Run(w, logger)
	if err != nil {
		return err
	}

	if snapshotPath != "" {
		if err := os.WriteFile(snapshotPath, res.Snapshot, 0o644); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}

	report(stdout, res)

	if expect != "" && res.Digest != want {
		return fmt.Errorf("digest mismatch: got %s, want %s", res.Digest, want)
	}
	return nil
}

// newLogger logs to stderr, at debug level when verbose so that every
// reallocation is shown.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func report(out io.Writer, res *workload.Result) {
	s := res.Stats
	fmt.Fprintf(out, "workload:      %s\n", res.Name)
	fmt.Fprintf(out, "ops:           %d (%d failed)\n", res.Ops, res.Failures)
	fmt.Fprintf(out, "len/cap:       %d/%d (%.1f%% used)\n", s.Len, s.Cap, s.Utilization*100)
	fmt.Fprintf(out, "reallocations: %d (%d elements relocated)\n", s.Reallocations, s.Relocated)
	fmt.Fprintf(out, "shifted:       %d\n", s.Shifted)
	fmt.Fprintf(out, "alloc errors:  %d\n", s.AllocFailures)
	if a := res.Arena; a != nil {
		fmt.Fprintf(out, "arena:         %d/%d slots in %d chunks\n", a.SizeInUse, a.Capacity, a.NumChunks)
	}
	fmt.Fprintf(out, "digest:        %s\n", res.Digest)
}

func printHelp(out io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(out, `alreplay - replay a list workload and report growth behavior

USAGE
    alreplay [flags] <workload.yaml>

FLAGS
`)
	fmt.Fprint(out, flagSet.FlagUsages())
}
