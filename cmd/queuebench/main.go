// Command queuebench compares the ring queue with other FIFO queues.
//
// Usage:
//
//	go run ./cmd/queuebench -n 10000000 -fill 4096
//	go run ./cmd/queuebench -json > results.json
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/randomizedcoder/ringqueue/internal/queue"
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/sys/cpu"
)

type queueInfo struct {
	name   string
	create func() queue.Queue[int]
}

type result struct {
	Queue      string  `json:"queue"`
	Workload   string  `json:"workload"`
	Ops        int     `json:"ops"`
	DurationNs int64   `json:"duration_ns"`
	NsPerOp    float64 `json:"ns_per_op"`
	MOpsPerSec float64 `json:"mops_per_sec"`
}

type report struct {
	GOOS         string   `json:"goos"`
	GOARCH       string   `json:"goarch"`
	CacheLinePad int      `json:"cache_line_pad"`
	Iterations   int      `json:"iterations"`
	Fill         int      `json:"fill"`
	RingQueueCap int      `json:"ring_queue_cap"`
	Results      []result `json:"results"`
}

// sink keeps dequeued values live so the loops are not optimized away.
var sink int

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	fill := flag.Int("fill", 4096, "queue depth for the fill/drain workload")
	asJSON := flag.Bool("json", false, "write results as JSON to stdout")
	flag.Parse()

	if *iterations < 1 || *fill < 1 {
		fmt.Fprintln(os.Stderr, "queuebench: -n and -fill must be positive")
		os.Exit(2)
	}

	queues := []queueInfo{
		{"RingQueue", func() queue.Queue[int] { return queue.NewRingQueue[int]() }},
		{"ListQueue", func() queue.Queue[int] { return queue.NewListQueue[int]() }},
		{"EapacheQueue", func() queue.Queue[int] { return queue.NewEapacheQueue[int]() }},
	}

	rep := report{
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		CacheLinePad: int(unsafe.Sizeof(cpu.CacheLinePad{})),
		Iterations:   *iterations,
		Fill:         *fill,
	}

	if !*asJSON {
		fmt.Printf("Benchmarking FIFO queues (%d iterations, fill=%d)\n", *iterations, *fill)
		fmt.Printf("Architecture: %s/%s, cache line pad %d bytes\n", rep.GOOS, rep.GOARCH, rep.CacheLinePad)
		fmt.Println("─────────────────────────────────────────────────")
	}

	for _, qi := range queues {
		rep.Results = append(rep.Results, enqueueDequeue(qi, *iterations))
	}
	rep.Results = append(rep.Results, channelBaseline(*iterations))
	for _, qi := range queues {
		rep.Results = append(rep.Results, fillDrain(qi, *iterations, *fill))
	}

	// Final ring size after filling to depth, from a single slot.
	rq := queue.NewRingQueue[int]()
	for i := 0; i < *fill; i++ {
		rq.Enqueue(i)
	}
	rep.RingQueueCap = rq.Cap()

	if *asJSON {
		out, err := sonnet.Marshal(rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "queuebench: encode results: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(append(out, '\n'))
		return
	}

	printResults(rep)
}

// enqueueDequeue keeps one element in flight.
func enqueueDequeue(qi queueInfo, n int) result {
	q := qi.create()
	start := time.Now()
	for i := 0; i < n; i++ {
		q.Enqueue(i)
		sink, _ = q.TryDequeue()
	}
	return newResult(qi.name, "enqueue+dequeue", n, time.Since(start))
}

func channelBaseline(n int) result {
	ch := make(chan int, 1)
	start := time.Now()
	for i := 0; i < n; i++ {
		ch <- i
		sink = <-ch
	}
	return newResult("Channel", "enqueue+dequeue", n, time.Since(start))
}

// fillDrain fills a fresh queue to depth and drains it, repeatedly,
// until roughly n elements have passed through.
func fillDrain(qi queueInfo, n, depth int) result {
	rounds := n / depth
	if rounds < 1 {
		rounds = 1
	}

	start := time.Now()
	for r := 0; r < rounds; r++ {
		q := qi.create()
		for i := 0; i < depth; i++ {
			q.Enqueue(i)
		}
		for i := 0; i < depth; i++ {
			sink, _ = q.TryDequeue()
		}
	}
	return newResult(qi.name, "fill/drain", rounds*depth, time.Since(start))
}

func newResult(name, workload string, ops int, d time.Duration) result {
	perOp := float64(d.Nanoseconds()) / float64(ops)
	r := result{
		Queue:      name,
		Workload:   workload,
		Ops:        ops,
		DurationNs: d.Nanoseconds(),
		NsPerOp:    perOp,
	}
	if perOp > 0 {
		r.MOpsPerSec = 1000 / perOp
	}
	return r
}

func printResults(rep report) {
	workload := ""
	for _, r := range rep.Results {
		if r.Workload != workload {
			workload = r.Workload
			fmt.Printf("\nResults (%s):\n", workload)
		}
		fmt.Printf("  %-13s %12v (%.2f ns/op, %.2f M ops/sec)\n",
			r.Queue+":", time.Duration(r.DurationNs), r.NsPerOp, r.MOpsPerSec)
	}

	fmt.Printf("\nRingQueue capacity after %d enqueues: %d\n", rep.Fill, rep.RingQueueCap)
}
