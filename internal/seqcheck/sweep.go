package seqcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/bits"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/randomizedcoder/ringqueue/internal/cancel"
	"github.com/randomizedcoder/ringqueue/internal/tick"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidConfig is returned by Sweep for an unusable Config.
var ErrInvalidConfig = errors.New("seqcheck: invalid config")

const (
	// MaxBits bounds the sequence length a Sweep accepts.
	MaxBits = 40

	defaultShards           = 16
	defaultProgressInterval = 10 * time.Second

	// Sequences between clock reads in each worker.
	progressEvery = 1 << 14
)

// Config controls a Sweep. Zero fields take their defaults.
type Config struct {
	// Bits is the number of operations per sequence, 1..MaxBits.
	Bits int

	// Shards is the number of equal ranges the space is split into.
	// Must be a power of two no larger than 2^Bits. Default 16, or
	// 2^Bits if that is smaller.
	Shards int

	// Workers bounds the shards checked concurrently.
	// Default runtime.GOMAXPROCS(0).
	Workers int

	// Factory creates the queue under test. Default RingFactory.
	Factory Factory

	// Logger receives progress records. Default slog.Default().
	Logger *slog.Logger

	// ProgressInterval is the minimum time between progress records
	// from one worker. Default 10s; negative disables progress.
	ProgressInterval time.Duration
}

// Result summarizes a Sweep.
type Result struct {
	Bits      int
	Shards    int
	Checked   uint64
	Total     uint64
	Elapsed   time.Duration
	Completed bool
}

func (c Config) withDefaults() (Config, error) {
	if c.Bits < 1 || c.Bits > MaxBits {
		return c, fmt.Errorf("%w: bits %d not in 1..%d", ErrInvalidConfig, c.Bits, MaxBits)
	}

	total := uint64(1) << c.Bits
	if c.Shards == 0 {
		c.Shards = defaultShards
		if uint64(c.Shards) > total {
			c.Shards = int(total)
		}
	}
	if c.Shards < 0 || bits.OnesCount(uint(c.Shards)) != 1 || uint64(c.Shards) > total {
		return c, fmt.Errorf("%w: shards %d must be a power of two no larger than %d", ErrInvalidConfig, c.Shards, total)
	}

	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Workers < 0 {
		return c, fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.Factory == nil {
		c.Factory = RingFactory
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.ProgressInterval == 0 {
		c.ProgressInterval = defaultProgressInterval
	}
	return c, nil
}

// Sweep checks all 2^Bits sequences.
//
// It returns the first *MismatchError found, or ctx.Err() if ctx ended
// before every sequence was checked. The Result is valid in every case.
func Sweep(ctx context.Context, cfg Config) (Result, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Result{}, err
	}

	total := uint64(1) << cfg.Bits
	shardSize := total / uint64(cfg.Shards)
	res := Result{Bits: cfg.Bits, Shards: cfg.Shards, Total: total}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	// Workers poll the flag between sequences; it trips on the caller's
	// cancel and on the first worker error.
	stop, release := cancel.WatchContext(gctx)
	defer release()

	var checked atomic.Uint64
	start := time.Now()

	cfg.Logger.Info("sweep started",
		"bits", cfg.Bits, "sequences", total, "shards", cfg.Shards, "workers", cfg.Workers)

	for shard := 0; shard < cfg.Shards; shard++ {
		if stop.Done() {
			break
		}

		from := uint64(shard) * shardSize
		to := from + shardSize
		g.Go(func() error {
			n, err := checkRange(cfg.Factory, cfg.Bits, from, to, stop, shardProgress(cfg, shard, shardSize))
			checked.Add(n)
			if err != nil {
				cfg.Logger.Error("mismatch", "shard", shard, "error", err)
			}
			return err
		})
	}

	err = g.Wait()
	res.Checked = checked.Load()
	res.Elapsed = time.Since(start)
	res.Completed = err == nil && res.Checked == total

	if err != nil {
		return res, err
	}
	if !res.Completed {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
	}

	cfg.Logger.Info("sweep finished",
		"bits", cfg.Bits, "checked", res.Checked, "elapsed", res.Elapsed, "completed", res.Completed)
	return res, nil
}

func shardProgress(cfg Config, shard int, shardSize uint64) func(uint64) {
	if cfg.ProgressInterval < 0 {
		return nil
	}

	t := tick.NewBatch(cfg.ProgressInterval, progressEvery)
	return func(done uint64) {
		if t.Tick() {
			cfg.Logger.Info("progress", "shard", shard, "checked", done, "of", shardSize)
		}
	}
}
