// Package chat implements the community chat: a single shared room backed by
// the messages collection, showing the latest window of messages.
package chat

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"nxorax_backend/internal/common"
	"nxorax_backend/internal/domain"
)

// Service defines the chat business logic.
type Service interface {
	History(ctx context.Context) ([]domain.Message, error)
	Send(ctx context.Context, sender *domain.Profile, text string) (*domain.Message, error)
}

type service struct {
	repo         Repository
	historyLimit int
	logger       *zap.Logger
}

// NewService creates a new chat service.
func NewService(repo Repository, historyLimit int, logger *zap.Logger) Service {
	return &service{repo: repo, historyLimit: historyLimit, logger: logger}
}

var _ Service = (*service)(nil)

func (s *service) History(ctx context.Context) ([]domain.Message, error) {
	msgs, err := s.repo.ListLatest(ctx, s.historyLimit)
	if err != nil {
		s.logger.Error("Failed to load chat history", zap.Error(err))
		return nil, common.ErrStoreUnavailable
	}
	return msgs, nil
}

// Send stores a message stamped with the sender's identity and admin flag.
// Empty messages and anonymous senders are rejected.
func (s *service) Send(ctx context.Context, sender *domain.Profile, text string) (*domain.Message, error) {
	if sender == nil {
		return nil, common.ErrUnauthorized
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrBadRequest.WithDetails("Message text must not be empty.")
	}
	msg := &domain.Message{
		Text:     text,
		UserID:   sender.ID,
		UserName: sender.FullName,
		IsAdmin:  sender.Role == domain.RoleAdmin,
	}
	if err := s.repo.Add(ctx, msg); err != nil {
		s.logger.Error("Failed to send chat message", zap.Error(err), zap.String("userID", sender.ID))
		return nil, common.ErrStoreUnavailable
	}
	return msg, nil
}
