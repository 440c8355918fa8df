// Command bindref-demo walks through the handle protocol: it builds a small
// job queue behind an owner, hands the owner across goroutines, and shows how
// observer access is gated by access windows. Run with -v for debug logging.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/bindref"
)

type jobQueue struct {
	jobs []string
	done int
}

func (q *jobQueue) Drop() {
	fmt.Printf("queue finalized: %d/%d jobs done\n", q.done, q.done+len(q.jobs))
}

func main() {
	verbose := flag.Bool("v", false, "Enable debug logging")
	workers := flag.Int("workers", 3, "Number of sequential worker hops")
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		bindref.SetLogger(logger)
	}

	owner := bindref.New(jobQueue{
		jobs: []string{"ingest", "transform", "publish"},
	})
	ref := owner.NewRef()

	// Outside any window the observer sees nothing.
	if _, ok := ref.Get(); ok {
		fmt.Println("unexpected: observer usable outside a window")
		os.Exit(1)
	}
	fmt.Println("observer outside a window: absent")

	// Hand the owner from goroutine to goroutine. Each hop opens a window,
	// works a job, and passes ownership on.
	handoff := make(chan *bindref.Owner[jobQueue], 1)
	handoff <- owner

	for i := 0; i < *workers; i++ {
		in, out := handoff, make(chan *bindref.Owner[jobQueue], 1)
		go func(n int, in, out chan *bindref.Owner[jobQueue]) {
			o := <-in
			o.Enter(func(q *jobQueue) {
				if len(q.jobs) > 0 {
					fmt.Printf("worker %d ran job %q\n", n, q.jobs[0])
					q.jobs = q.jobs[1:]
					q.done++
				}
				if v, ok := ref.Get(); ok {
					fmt.Printf("worker %d observer view: %d jobs left\n", n, len(v.jobs))
				}
			})
			out <- o
		}(i, in, out)
		handoff = out
	}

	owner = <-handoff

	// Release the observer under a final window, then close.
	owner.Enter(func(*jobQueue) {
		ref.Release()
	})
	owner.Close()
}
