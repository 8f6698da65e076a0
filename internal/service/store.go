package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fatalistix/mosaic-submit/internal/domain/model"
	"github.com/google/uuid"
)

type SubmissionStore struct {
	mu          sync.RWMutex
	submissions map[string]model.Submission
	now         func() time.Time
	log         *slog.Logger
}

func NewSubmissionStore(log *slog.Logger) *SubmissionStore {
	return &SubmissionStore{
		submissions: make(map[string]model.Submission),
		now:         time.Now,
		log:         log,
	}
}

func (s *SubmissionStore) Accept(hashtags []string, pieceSize model.PieceSize, originSize int) model.Submission {
	submission := model.Submission{
		Id:         uuid.NewString(),
		Hashtags:   append([]string(nil), hashtags...),
		PieceSize:  pieceSize,
		OriginSize: originSize,
		ReceivedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.submissions[submission.Id] = submission
	s.mu.Unlock()

	s.log.Info("submission accepted", slog.Any("submission", submission))

	return submission
}

func (s *SubmissionStore) Get(id string) (model.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submission, ok := s.submissions[id]
	return submission, ok
}

func (s *SubmissionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.submissions)
}
