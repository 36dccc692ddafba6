package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"nolij-demo-be/internal/dto"
	"nolij-demo-be/internal/pkg/logger"
	"nolij-demo-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type IAdminService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUsageAnalytics(ctx context.Context) (*dto.UsageAnalyticsResponse, error)
	GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	conversationRepo contract.ConversationRepository
	logger           logger.ILogger

	adminUsername string
	adminPassword string
	jwtSecret     string
	tokenTTL      time.Duration
}

func NewAdminService(
	conversationRepo contract.ConversationRepository,
	log logger.ILogger,
	adminUsername, adminPassword, jwtSecret string,
) IAdminService {
	return &adminService{
		conversationRepo: conversationRepo,
		logger:           log,
		adminUsername:    adminUsername,
		adminPassword:    adminPassword,
		jwtSecret:        jwtSecret,
		tokenTTL:         12 * time.Hour,
	}
}

func (s *adminService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	userOk := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.adminUsername)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) == 1
	if !userOk || !passOk {
		s.logger.Warn("Admin", "Failed login attempt", map[string]interface{}{"username": req.Username})
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  req.Username,
		"role": "admin",
		"exp":  expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("Admin", "Admin logged in", map[string]interface{}{"username": req.Username})
	return &dto.LoginResponse{Token: signed, ExpiresAt: expiresAt}, nil
}

// GetUsageAnalytics aggregates over every stored conversation. A full scan
// is acceptable at demo scale.
func (s *adminService) GetUsageAnalytics(ctx context.Context) (*dto.UsageAnalyticsResponse, error) {
	records, err := s.conversationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	resp := &dto.UsageAnalyticsResponse{
		TotalConversations: len(records),
		VisualizationTypes: make(map[string]int),
	}

	for _, record := range records {
		resp.TotalMessages += len(record.Messages)
		for _, msg := range record.Messages {
			if msg.Sender.IsUser() {
				resp.UserMessages++
			} else {
				resp.AgentMessages++
			}
			resp.AttachmentCount += len(msg.Attachments)
			if msg.Visualization != nil {
				resp.VisualizationTypes[string(msg.Visualization.Type)]++
			}
		}
		if resp.LastActivity == nil || record.UpdatedAt.After(*resp.LastActivity) {
			updated := record.UpdatedAt
			resp.LastActivity = &updated
		}
	}

	return resp, nil
}

func (s *adminService) GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.logger.GetLogs(level, limit, offset)
}
