package flatfile

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/talent-compass/internal/domain/candidate"
	"github.com/cmlabs-hris/talent-compass/internal/pkg/storage"
)

type CandidateLog struct {
	storage storage.LineStorage
	path    string
}

func NewCandidateLog(st storage.LineStorage, path string) *CandidateLog {
	return &CandidateLog{storage: st, path: path}
}

func (l *CandidateLog) Append(ctx context.Context, c candidate.Candidate) error {
	if err := l.storage.AppendLine(ctx, l.path, c.Record()); err != nil {
		return fmt.Errorf("append candidate %s: %w", c.ID, err)
	}
	return nil
}
