package world

import (
	"context"
	"errors"
	"sync"
)

// Job represents a generation request
type Job struct {
	Index int
	Seed  int64
	// Result channel - will be sent the result when done
	ResultChan chan Result
}

// Result contains the result of a generation job
type Result struct {
	Index int
	Seed  int64
	World *World
	Error error
}

// Pool manages goroutines that generate independent worlds. Each job is a
// full single-threaded pass; parallelism is only across seeds.
type Pool struct {
	gen      *Generator
	jobQueue chan Job
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewPool creates a new generation pool
func NewPool(gen *Generator, workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	pool := &Pool{
		gen:      gen,
		jobQueue: make(chan Job, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}

	return pool
}

// Submit submits a job to the pool
// Returns true if job was submitted successfully, false if queue is full or the pool is shut down
func (p *Pool) Submit(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking submits a job and blocks until it's queued or the pool is shut down
func (p *Pool) SubmitBlocking(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	case <-p.ctx.Done():
		return false
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			w, err := p.gen.Generate(job.Seed)
			if err != nil {
				p.gen.conf.Log.Debug("world: pool job failed", "worker", id, "seed", job.Seed, "err", err)
			}

			result := Result{Index: job.Index, Seed: job.Seed, World: w, Error: err}

			select {
			case job.ResultChan <- result:
			case <-p.ctx.Done():
				return
			}

		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Queued jobs are dropped.
// The queue is left open so a late Submit never panics.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the current number of jobs in the queue
func (p *Pool) QueueLength() int {
	return len(p.jobQueue)
}

// GenerateAll generates one world per seed on up to workers goroutines and
// returns them in seed order. Failures are joined; the worlds that did
// generate are still returned.
func GenerateAll(ctx context.Context, gen *Generator, seeds []int64, workers int) ([]*World, error) {
	pool := NewPool(gen, workers, len(seeds))
	defer pool.Shutdown()

	results := make(chan Result, len(seeds))
	for i, seed := range seeds {
		if !pool.SubmitBlocking(Job{Index: i, Seed: seed, ResultChan: results}) {
			return nil, context.Canceled
		}
	}

	worlds := make([]*World, len(seeds))
	var errs []error
	for range seeds {
		select {
		case r := <-results:
			worlds[r.Index] = r.World
			if r.Error != nil {
				errs = append(errs, r.Error)
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return worlds, errors.Join(errs...)
}
