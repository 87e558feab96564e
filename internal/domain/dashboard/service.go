package dashboard

import "context"

type DashboardService interface {
	GetSnapshot(ctx context.Context) (*Snapshot, error)
}
