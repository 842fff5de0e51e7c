package engine

import (
	"context"
	"sync"

	"github.com/noshahi-devs/notification-service/internal/models"
)

// SendBulk fans the requests out concurrently, one independent
// pipeline per recipient, and reports true only when every send
// succeeded. Partial failure neither aborts nor rolls back the others;
// each request yields its own terminal outcome and log record.
// Cancelling ctx stops requests that have not started yet, while
// in-flight sends run to their own terminal outcome.
func (e *Engine) SendBulk(ctx context.Context, requests []models.SendRequest) bool {
	results := make([]bool, len(requests))

	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req models.SendRequest) {
			defer wg.Done()
			if ctx.Err() != nil {
				e.logger.Warnf("Bulk send abandoned before dispatching to %s", req.To)
				return
			}
			results[i] = e.Send(ctx, req).Success
		}(i, req)
	}
	wg.Wait()

	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}
