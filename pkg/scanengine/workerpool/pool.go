// Package workerpool implements the bounded pool of worker goroutines
// used by the local threaded scan driver. It is grounded on the
// channel-based goroutine idiom in the teacher's pkg/parallelism
// (SIMDWorkerArray): a fixed-size array of goroutines, each reading a
// dedicated channel until it is closed, with a sync.WaitGroup-style drain
// on shutdown. That pattern broadcasts one workload to every goroutine;
// here the workers instead pull from a single shared job channel (a job
// queue rather than a broadcast), since scan jobs are independent file
// paths rather than one SIMD workload split across fixed indices.
package workerpool

import (
	"github.com/arvoscan/arvo/pkg/mimeclass"
	"github.com/arvoscan/arvo/pkg/state"
)

// DefaultSize is the suggested worker pool size from the component design
// (§4.4), used when no configuration overrides it.
const DefaultSize = 8

// Handler processes one job. It is invoked on a worker goroutine with that
// worker's own, never-shared MIME handle.
type Handler func(handle *mimeclass.Handle, path string)

// Pool is a bounded set of worker goroutines consuming file paths from a
// shared queue. Each worker owns exactly one mimeclass.Handle for its
// entire lifetime, created on startup and closed on shutdown — never
// shared across goroutines, satisfying the worker-local MIME handle
// invariant from §3/§4.4.
type Pool struct {
	jobs   chan string
	done   chan struct{}
	size   int
	closed state.Marker
}

// New creates a pool of size worker goroutines (DefaultSize when size is
// less than 1), each
// invoking handler for every job submitted via Submit.
func New(size int, handler Handler) *Pool {
	if size < 1 {
		size = DefaultSize
	}

	p := &Pool{
		jobs: make(chan string, size*4),
		done: make(chan struct{}),
		size: size,
	}

	remaining := size
	workerDone := make(chan struct{}, size)
	for i := 0; i < size; i++ {
		go func() {
			handle := mimeclass.NewHandle()
			defer handle.Close()
			for path := range p.jobs {
				handler(handle, path)
			}
			workerDone <- struct{}{}
		}()
	}

	go func() {
		for remaining > 0 {
			<-workerDone
			remaining--
		}
		close(p.done)
	}()

	return p
}

// Submit enqueues path for processing. It blocks if the queue is full,
// which is the scan driver's direct analogue of a bounded queue's
// blocking push (see §5, "enqueue into a full pool queue").
func (p *Pool) Submit(path string) {
	p.jobs <- path
}

// Size returns the number of worker goroutines in the pool.
func (p *Pool) Size() int {
	return p.size
}

// Close stops accepting new jobs and blocks until every queued job has
// drained and every worker has exited, closing its MIME handle exactly
// once. It is idempotent: a second call simply waits on the first call's
// drain rather than closing the job channel twice.
func (p *Pool) Close() {
	if p.closed.Marked() {
		<-p.done
		return
	}
	p.closed.Mark()
	close(p.jobs)
	<-p.done
}
