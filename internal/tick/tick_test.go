package tick_test

import (
	"testing"
	"time"

	"github.com/randomizedcoder/ringqueue/internal/tick"
)

type fakeClock struct {
	t     time.Time
	reads int
}

func (c *fakeClock) now() time.Time {
	c.reads++
	return c.t
}

func TestBatch_ChecksClockEveryN(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	b := tick.NewBatchWithClock(time.Second, 100, clk.now)
	clk.reads = 0

	for i := 0; i < 99; i++ {
		if b.Tick() {
			t.Fatalf("unexpected tick at call %d", i+1)
		}
	}
	if clk.reads != 0 {
		t.Errorf("expected no clock reads before call 100, got %d", clk.reads)
	}

	b.Tick()
	if clk.reads != 1 {
		t.Errorf("expected 1 clock read at call 100, got %d", clk.reads)
	}
}

func TestBatch_FiresAfterInterval(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	b := tick.NewBatchWithClock(time.Second, 1, clk.now)

	if b.Tick() {
		t.Error("expected no tick before interval elapsed")
	}

	clk.t = clk.t.Add(time.Second)
	if !b.Tick() {
		t.Error("expected tick after interval elapsed")
	}

	// Fired once; the next interval starts at the tick.
	if b.Tick() {
		t.Error("expected no second tick in the same interval")
	}

	clk.t = clk.t.Add(999 * time.Millisecond)
	if b.Tick() {
		t.Error("expected no tick before the next interval")
	}
	clk.t = clk.t.Add(time.Millisecond)
	if !b.Tick() {
		t.Error("expected tick at the next interval")
	}
}

func TestBatch_Reset(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	b := tick.NewBatchWithClock(time.Second, 1, clk.now)

	clk.t = clk.t.Add(2 * time.Second)
	b.Reset()
	if b.Tick() {
		t.Error("expected no tick right after Reset()")
	}
}

func TestBatch_EveryClamped(t *testing.T) {
	b := tick.NewBatch(0, 0)
	if !b.Tick() {
		t.Error("expected zero interval with every<1 to tick on first call")
	}
	if b.Interval() != 0 {
		t.Errorf("expected Interval() = 0, got %v", b.Interval())
	}
}
