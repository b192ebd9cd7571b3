package services

import (
	"context"
	"log"
	"time"
)

// StartSnapshotJanitor starts a background goroutine that periodically
// drops expired report snapshots from the cache. The worker stops when ctx
// is done.
func StartSnapshotJanitor(ctx context.Context, interval time.Duration, svc *ReportService) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("snapshot janitor: shutting down")
				return
			case <-ticker.C:
				if removed := svc.Sweep(time.Now()); removed > 0 {
					log.Println("snapshot janitor: expired snapshots removed:", removed)
				}
			}
		}
	}()
}
