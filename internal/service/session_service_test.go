package service

import (
	"context"
	"testing"
	"time"

	"carmarket/internal/mechanic"
	"carmarket/internal/repository"
	"carmarket/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSessionService_Create(t *testing.T) {
	logger := zaptest.NewLogger(t)
	_, rdb := newTestRedis(t)
	sessions := repository.NewSessionRepository(rdb, time.Hour, logger)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	svc := NewSessionService(sessions, jwtManager, logger)
	ctx := context.Background()

	resp, err := svc.Create(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := jwtManager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.SessionID, claims.SessionID)

	state, err := sessions.Get(ctx, uuid.MustParse(resp.SessionID))
	require.NoError(t, err)
	assert.Equal(t, mechanic.Reset(), state)
}
