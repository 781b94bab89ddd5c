// internal/stories/cleanup.go
package stories

import (
	"context"
	"log"
	"time"
)

// CleanupService periodically removes stories past the retention window.
type CleanupService struct {
	service  Service
	interval time.Duration
}

func NewCleanupService(service Service, interval time.Duration) *CleanupService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	return &CleanupService{
		service:  service,
		interval: interval,
	}
}

// Start runs the cleanup loop until the context is cancelled.
func (c *CleanupService) Start(ctx context.Context) {
	log.Printf("Starting story cleanup service with interval: %v", c.interval)

	// Run initial cleanup
	c.runCleanup(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.runCleanup(ctx)
		case <-ctx.Done():
			log.Println("Stopping story cleanup service")
			return
		}
	}
}

func (c *CleanupService) runCleanup(ctx context.Context) {
	start := time.Now()
	removed, err := c.service.CleanupExpiredStories(ctx)
	if err != nil {
		log.Printf("Failed to cleanup expired stories: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Story cleanup removed %d stories in %v", removed, time.Since(start))
	}
}
