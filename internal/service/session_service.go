package service

import (
	"context"

	"carmarket/internal/dto"
	"carmarket/internal/mechanic"
	"carmarket/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionService struct {
	sessions   SessionStore
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewSessionService(sessions SessionStore, jwtManager *auth.JWTManager, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions:   sessions,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Create starts a visitor session with a fresh recommendation flow and signs its token.
func (s *SessionService) Create(ctx context.Context) (*dto.SessionResponse, error) {
	id := uuid.New()

	if err := s.sessions.Save(ctx, id, mechanic.Reset()); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(id.String())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Session created", zap.String("session_id", id.String()))

	return &dto.SessionResponse{
		SessionID: id.String(),
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.jwtManager.GetTokenDuration().Seconds()),
	}, nil
}
