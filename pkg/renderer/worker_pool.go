package renderer

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// poolQueueSize bounds the number of rows waiting for a worker
const poolQueueSize = 256

// poolTimeout is passed through to the underlying pool. Workers do not exit
// on their own; only Stop releases them.
const poolTimeout = 1 * time.Second

// WorkerPool runs row tasks on a fixed set of reusable goroutines.
// It lives as long as its Raytracer and must be stopped with Stop.
type WorkerPool struct {
	pool       worker.DynamicWorkerPool
	numWorkers int
	stopOnce   sync.Once
}

// NewWorkerPool creates a pool with numWorkers goroutines
func NewWorkerPool(numWorkers int) *WorkerPool {
	return &WorkerPool{
		pool:       worker.NewDynamicWorkerPool(numWorkers, poolQueueSize, poolTimeout),
		numWorkers: numWorkers,
	}
}

// Submit queues fn on the pool. wg is marked done when fn returns.
func (wp *WorkerPool) Submit(id int, wg *sync.WaitGroup, fn func()) {
	wg.Add(1)
	wp.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			defer wg.Done()
			fn()
			return nil, nil
		},
	})
}

// Stop shuts down all workers. Calling it more than once is safe.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(wp.pool.Stop)
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
