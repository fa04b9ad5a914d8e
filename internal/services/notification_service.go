// Файл: internal/services/notification_service.go
package services

import "go.uber.org/zap"

// NotificationServiceInterface delivers one-time login codes. Real delivery
// (mail, SMS) lives outside this service.
type NotificationServiceInterface interface {
	SendLoginCode(to, code string) error
}

// mockNotificationService пишет в лог вместо реальной отправки.
type mockNotificationService struct {
	logger *zap.Logger
}

func NewMockNotificationService(logger *zap.Logger) NotificationServiceInterface {
	return &mockNotificationService{logger: logger}
}

func (s *mockNotificationService) SendLoginCode(to, code string) error {
	s.logger.Info("login code delivery simulated",
		zap.String("to", to),
		zap.String("code", code),
	)
	return nil
}
