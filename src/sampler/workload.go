package sampler

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const chunkSize = 4096

// Churn runs allocation-heavy workers until ctx ends, giving the sampler a
// steady stream of heap activity and GC cycles to observe. Each worker
// allocates batch chunks per pass and periodically drops its references so
// the garbage collector has something to reclaim.
func Churn(ctx context.Context, workers, batch int) error {
	if workers < 1 {
		workers = 1
	}
	if batch < 1 {
		batch = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			held := make([][]byte, 0, batch*8)
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				for i := 0; i < batch; i++ {
					b := make([]byte, chunkSize)
					b[0] = byte(i)
					held = append(held, b)
				}
				if len(held) >= batch*8 {
					held = held[:0]
				}
			}
		})
	}
	return g.Wait()
}
