// Package retry provides the bounded retry loop used for connections
// established at bootstrap.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Do runs fn up to attempts times, waiting gap between failed attempts. It
// returns nil on the first success, ctx.Err() if the context is cancelled
// while waiting, and otherwise the last error wrapped with the attempt count.
func Do(ctx context.Context, attempts int, gap time.Duration, fn func() error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		select {
		case <-time.After(gap):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, err)
}
