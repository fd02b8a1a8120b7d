// Command queuecheck runs the exhaustive sequence check against a queue
// implementation.
//
// Usage:
//
//	go run ./cmd/queuecheck -bits 24
//	go run ./cmd/queuecheck -bits 27 -timeout 30m -impl ring
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/randomizedcoder/ringqueue/internal/seqcheck"
)

func main() {
	bits := flag.Int("bits", 20, "operations per sequence (checks 2^bits sequences)")
	shards := flag.Int("shards", 64, "number of shards, a power of two")
	workers := flag.Int("workers", 0, "concurrent shards (0 = GOMAXPROCS)")
	timeout := flag.Duration("timeout", 0, "stop after this long (0 = no limit)")
	impl := flag.String("impl", "ring", "queue under test: ring or eapache")
	progress := flag.Duration("progress", 10*time.Second, "per-worker progress log interval (negative disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	factory, err := factoryFor(*impl)
	if err != nil {
		logger.Error("bad flag", "error", err)
		os.Exit(2)
	}

	// Never shard finer than the space itself.
	if *bits >= 1 && *bits <= seqcheck.MaxBits && *shards > 1<<*bits {
		*shards = 1 << *bits
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	res, err := seqcheck.Sweep(ctx, seqcheck.Config{
		Bits:             *bits,
		Shards:           *shards,
		Workers:          *workers,
		Factory:          factory,
		Logger:           logger.With("impl", *impl),
		ProgressInterval: *progress,
	})

	var mm *seqcheck.MismatchError
	switch {
	case err == nil:
		perSeq := float64(res.Elapsed.Nanoseconds()) / float64(res.Checked)
		fmt.Printf("OK: %d sequences of %d operations in %v (%.1f ns/sequence)\n",
			res.Checked, res.Bits, res.Elapsed.Round(time.Millisecond), perSeq)
	case errors.As(err, &mm):
		fmt.Printf("FAIL: %v\n", mm)
		os.Exit(1)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warn("sweep interrupted",
			"checked", res.Checked, "total", res.Total, "elapsed", res.Elapsed, "error", err)
		os.Exit(3)
	default:
		logger.Error("sweep failed", "error", err)
		os.Exit(2)
	}
}

func factoryFor(name string) (seqcheck.Factory, error) {
	switch name {
	case "ring":
		return seqcheck.RingFactory, nil
	case "eapache":
		return seqcheck.EapacheFactory, nil
	}
	return nil, fmt.Errorf("unknown -impl %q", name)
}
