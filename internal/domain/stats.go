package domain

import (
	"context"
	"time"
)

// Hit is one page view reported to the statistics service.
type Hit struct {
	App       string    `json:"app"`
	URI       string    `json:"uri"`
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

// ViewStats is the aggregated hit count for one app and uri.
type ViewStats struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

// StatsClient is the port to the hit statistics service.
type StatsClient interface {
	Hit(ctx context.Context, hit Hit) error
	Stats(ctx context.Context, start, end time.Time, uris []string, unique bool) ([]ViewStats, error)
}
