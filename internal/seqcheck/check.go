package seqcheck

import (
	"fmt"

	"github.com/randomizedcoder/ringqueue/internal/cancel"
	"github.com/randomizedcoder/ringqueue/internal/queue"
)

// Factory creates an empty queue under test.
type Factory func() queue.Queue[int]

// RingFactory creates a RingQueue.
func RingFactory() queue.Queue[int] { return queue.NewRingQueue[int]() }

// EapacheFactory creates an EapacheQueue.
func EapacheFactory() queue.Queue[int] { return queue.NewEapacheQueue[int]() }

// MismatchError describes the first step at which the queue under test
// disagreed with the reference.
type MismatchError struct {
	Sequence uint64
	Bits     int
	Step     int

	Got, Want     int
	GotOK, WantOK bool

	GotLen, WantLen int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("sequence %0*b step %d: TryDequeue() = (%d, %v) Len() = %d, want (%d, %v) Len() = %d",
		e.Bits, e.Sequence, e.Step, e.Got, e.GotOK, e.GotLen, e.Want, e.WantOK, e.WantLen)
}

// CheckSequence runs one encoded sequence of bits operations.
func CheckSequence(newQueue Factory, bits int, seq uint64) error {
	got := newQueue()
	want := queue.NewListQueue[int]()

	got.Enqueue(0)
	want.Enqueue(0)
	n := 1

	for step := 0; step < bits; step++ {
		if seq&(1<<step) == 0 {
			got.Enqueue(n)
			want.Enqueue(n)
			n++
		} else {
			gv, gok := got.TryDequeue()
			wv, wok := want.TryDequeue()
			if gv != wv || gok != wok || got.Len() != want.Len() {
				return &MismatchError{
					Sequence: seq,
					Bits:     bits,
					Step:     step,
					Got:      gv,
					Want:     wv,
					GotOK:    gok,
					WantOK:   wok,
					GotLen:   got.Len(),
					WantLen:  want.Len(),
				}
			}
			continue
		}

		if got.Len() != want.Len() {
			return &MismatchError{
				Sequence: seq,
				Bits:     bits,
				Step:     step,
				GotOK:    true,
				WantOK:   true,
				GotLen:   got.Len(),
				WantLen:  want.Len(),
			}
		}
	}

	return nil
}

// CheckRange checks every sequence in [from, to) and returns how many
// were checked. It stops at the first mismatch, or between sequences
// once stop is done; a nil stop never stops.
func CheckRange(newQueue Factory, bits int, from, to uint64, stop cancel.Canceler) (uint64, error) {
	return checkRange(newQueue, bits, from, to, stop, nil)
}

func checkRange(newQueue Factory, bits int, from, to uint64, stop cancel.Canceler, progress func(checked uint64)) (uint64, error) {
	var checked uint64
	for seq := from; seq < to; seq++ {
		if stop != nil && stop.Done() {
			return checked, nil
		}
		if err := CheckSequence(newQueue, bits, seq); err != nil {
			return checked, err
		}
		checked++

		if progress != nil {
			progress(checked)
		}
	}
	return checked, nil
}
