package lingua

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/c360/ptil/ptilerr"
)

// Pooled adapts a family of Analyzer instances that are individually not
// safe for concurrent use (most hand-rolled tokenizers keep internal
// scratch buffers) into one Analyzer the Encoder can call from any number
// of goroutines. It checks an instance out of a fixed-size pool for the
// duration of one Analyze call and returns it afterward.
type Pooled struct {
	sem       *semaphore.Weighted
	instances chan Analyzer
}

// NewPooled builds size instances with factory and returns a Pooled
// wrapping them. factory errors abort construction; partially built
// instances are discarded since there is nothing useful to do with a
// pool smaller than requested.
func NewPooled(size int, factory func() (Analyzer, error)) (*Pooled, error) {
	if size <= 0 {
		return nil, ptilerr.WrapInvalid(ptilerr.ErrParserNotConfigured, "lingua", "NewPooled", "pool size must be positive")
	}
	instances := make(chan Analyzer, size)
	for i := 0; i < size; i++ {
		inst, err := factory()
		if err != nil {
			return nil, ptilerr.WrapParserUnavailable(err, "lingua", "NewPooled", "factory failed while filling pool")
		}
		instances <- inst
	}
	return &Pooled{
		sem:       semaphore.NewWeighted(int64(size)),
		instances: instances,
	}, nil
}

// Analyze checks out one pool instance, runs Analyze on it, and returns it
// to the pool before returning. It blocks until either an instance frees up
// or ctx is canceled.
func (p *Pooled) Analyze(ctx context.Context, text string) (Analysis, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return Analysis{}, ptilerr.WrapParserUnavailable(err, "lingua", "Analyze", "pool exhausted or context canceled")
	}
	defer p.sem.Release(1)

	inst := <-p.instances
	defer func() { p.instances <- inst }()

	return inst.Analyze(ctx, text)
}

// Size reports how many instances the pool was built with.
func (p *Pooled) Size() int {
	return cap(p.instances)
}
