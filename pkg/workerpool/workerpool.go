package workerpool

import (
	"context"
	"errors"
	"sync"

	"github.com/twmb/murmur3"
	"go.uber.org/zap"
)

// Task ...
type Task func()

// ErrStopped is returned by Submit after shutdown has begun.
var ErrStopped = errors.New("workerpool: pool stopped")

// Pool runs tasks on a bounded set of workers. Tasks submitted with the
// same key land on the same worker, so mutations of one shared row are
// serialized without row-level coordination.
type Pool struct {
	logger *zap.Logger
	queues []chan Task

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New starts numWorkers workers, each with its own queue of queueSize.
func New(logger *zap.Logger, numWorkers int, queueSize int) *Pool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}

	p := &Pool{
		logger: logger,
		queues: make([]chan Task, numWorkers),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan Task, queueSize)
	}

	p.wg.Add(numWorkers)
	for i := range p.queues {
		go p.workerLoop(p.queues[i])
	}
	return p
}

// Submit enqueues a task on the worker owning the key. Blocks while the
// owning worker's queue is full.
func (p *Pool) Submit(key string, task Task) error {
	select {
	case <-p.done:
		return ErrStopped
	default:
	}

	index := murmur3.Sum32([]byte(key)) % uint32(len(p.queues))
	select {
	case p.queues[index] <- task:
		return nil
	case <-p.done:
		return ErrStopped
	}
}

// Shutdown stops intake and waits for queued and in-flight tasks to
// finish, or for the context to expire.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) workerLoop(queue chan Task) {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// drain what was accepted before shutdown
			for {
				select {
				case task := <-queue:
					p.runTask(task)
				default:
					return
				}
			}
		case task := <-queue:
			p.runTask(task)
		}
	}
}

func (p *Pool) runTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic recovered in worker task", zap.Any("panic", r))
		}
	}()
	task()
}
