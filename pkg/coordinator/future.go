package coordinator

import (
	"context"

	"github.com/sitekeeper/sitekeeper/pkg/models"
)

// Future resolves with the final verdict of one node-action.
type Future struct {
	done   chan struct{}
	result models.NodeActionResult
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(res models.NodeActionResult) {
	f.result = res
	close(f.done)
}

// Wait blocks until the action resolves or ctx is done.
func (f *Future) Wait(ctx context.Context) (models.NodeActionResult, error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return models.NodeActionResult{}, ctx.Err()
	}
}

// Done exposes the completion channel for select loops.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// MultiFuture resolves with the verdicts of a parallel submission, in
// submission order.
type MultiFuture struct {
	done    chan struct{}
	results []models.NodeActionResult
}

func newMultiFuture(n int) *MultiFuture {
	return &MultiFuture{done: make(chan struct{}), results: make([]models.NodeActionResult, 0, n)}
}

func (m *MultiFuture) resolve(results []models.NodeActionResult) {
	m.results = results
	close(m.done)
}

// Wait blocks until every child action resolves or ctx is done.
func (m *MultiFuture) Wait(ctx context.Context) ([]models.NodeActionResult, error) {
	select {
	case <-m.done:
		return m.results, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
