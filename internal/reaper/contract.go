//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package reaper

import (
	"context"
	"time"
)

type SessionPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// Metrics is the part of the metrics-lib client the reaper reports through.
type Metrics interface {
	Increment(name string)
}
