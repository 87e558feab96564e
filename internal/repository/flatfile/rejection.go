package flatfile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/storage"
)

const reasonField = 1

type RejectionLog struct {
	storage storage.LineStorage
	path    string
}

func NewRejectionLog(st storage.LineStorage, path string) *RejectionLog {
	return &RejectionLog{storage: st, path: path}
}

func (l *RejectionLog) Append(ctx context.Context, e candidate.RejectionEvent) error {
	if err := l.storage.AppendLine(ctx, l.path, e.Record()); err != nil {
		return fmt.Errorf("append rejection for %s: %w", e.CandidateID, err)
	}
	return nil
}

// ReadReasons skips lines with fewer than two fields. A log that was never
// written yields candidate.ErrNoHistory.
func (l *RejectionLog) ReadReasons(ctx context.Context) ([]string, error) {
	ok, err := l.storage.Exists(ctx, l.path)
	if err != nil {
		return nil, fmt.Errorf("check rejection log: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", candidate.ErrNoHistory, l.path)
	}

	lines, err := l.storage.ReadLines(ctx, l.path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", candidate.ErrNoHistory, l.path)
		}
		return nil, fmt.Errorf("read rejection log: %w", err)
	}

	reasons := make([]string, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, ",")
		if len(parts) <= reasonField {
			continue
		}
		reasons = append(reasons, parts[reasonField])
	}
	return reasons, nil
}
