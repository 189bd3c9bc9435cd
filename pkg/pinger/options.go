package pinger

import (
	"context"
	"time"
)

type pingerOption func(*Pinger)

func WithCount(count int) pingerOption {
	return func(p *Pinger) {
		p.count = count
	}
}

func WithTimeout(timeout time.Duration) pingerOption {
	return func(p *Pinger) {
		p.timeout = timeout
	}
}

func WithWorkers(workers int) pingerOption {
	return func(p *Pinger) {
		p.workers = workers
	}
}

// WithRunner swaps the command runner, used by tests.
func WithRunner(run func(ctx context.Context, name string, args ...string) ([]byte, error)) pingerOption {
	return func(p *Pinger) {
		p.run = run
	}
}
