package service

import (
	"context"
	"testing"
	"time"

	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/entity"
	"nolij-demo-be/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (IAdminService, *memory.ConversationRepository) {
	t.Helper()
	store := memory.NewConversationRepository()
	svc := NewAdminService(store, nopLogger{}, "admin", "s3cret", "test-signing-key")
	return svc, store
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newAdminFixture(t)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	token, err := jwt.Parse(res.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-signing-key"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAdminFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "intruder", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUsageAnalytics(t *testing.T) {
	svc, store := newAdminFixture(t)

	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	require.NoError(t, store.Upsert(context.Background(), &entity.Conversation{
		Id:    uuid.New(),
		Title: "first",
		Messages: []entity.Message{
			{Sender: entity.SenderUser, Text: "check my switch"},
			{
				Sender: entity.SenderAgent,
				Text:   "analysis",
				Visualization: &entity.Visualization{
					Type: entity.VizCompatibilityMatrix,
					Data: entity.CompatibilityMatrixData{},
				},
			},
		},
		UpdatedAt: older,
	}))
	require.NoError(t, store.Upsert(context.Background(), &entity.Conversation{
		Id:    uuid.New(),
		Title: "second",
		Messages: []entity.Message{
			{
				Sender:      entity.SenderUser,
				Text:        "upload",
				Attachments: []entity.FileAttachment{{Name: "quote.pdf"}},
			},
		},
		UpdatedAt: newer,
	}))

	res, err := svc.GetUsageAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalConversations)
	assert.Equal(t, 3, res.TotalMessages)
	assert.Equal(t, 2, res.UserMessages)
	assert.Equal(t, 1, res.AgentMessages)
	assert.Equal(t, 1, res.AttachmentCount)
	assert.Equal(t, 1, res.VisualizationTypes["compatibility-matrix"])
	require.NotNil(t, res.LastActivity)
	assert.WithinDuration(t, newer, *res.LastActivity, time.Second)
}

func TestUsageAnalyticsEmptyStore(t *testing.T) {
	svc, _ := newAdminFixture(t)

	res, err := svc.GetUsageAnalytics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.TotalConversations)
	assert.Nil(t, res.LastActivity)
}
