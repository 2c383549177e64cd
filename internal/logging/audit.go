package logging

import (
	"context"

	"github.com/you/streamsvc/domain"
	"go.uber.org/zap"
)

// AuditLoggerImpl writes audit events as structured log entries
type AuditLoggerImpl struct {
	logger *zap.Logger
}

// NewAuditLogger creates an audit logger on a named child of logger
func NewAuditLogger(logger *zap.Logger) domain.AuditLogger {
	return &AuditLoggerImpl{logger: logger.Named("audit")}
}

// LogEvent implements domain.AuditLogger
func (a *AuditLoggerImpl) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	event.WithClientContext(domain.ClientContextFrom(ctx))

	fields := []zap.Field{
		zap.String("event_type", string(event.EventType)),
		zap.Bool("success", event.Success),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.UserID != "" {
		fields = append(fields, zap.String("user_id", event.UserID))
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.Phone != "" {
		fields = append(fields, zap.String("phone", event.Phone))
	}
	if event.IPAddress != "" {
		fields = append(fields, zap.String("ip_address", event.IPAddress))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.ErrorMsg != "" {
		fields = append(fields, zap.String("error", event.ErrorMsg))
	}
	if len(event.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", event.Metadata))
	}

	if event.Success {
		a.logger.Info("audit event", fields...)
	} else {
		a.logger.Warn("audit event", fields...)
	}
	return nil
}

// LogOTPRequest implements domain.AuditLogger
func (a *AuditLoggerImpl) LogOTPRequest(ctx context.Context, userID, destination string) error {
	return a.LogEvent(ctx, domain.NewAuditEvent(domain.OTPRequestEvent, userID).
		WithMetadata("destination", destination))
}

// LogOTPVerification implements domain.AuditLogger
func (a *AuditLoggerImpl) LogOTPVerification(ctx context.Context, userID, destination string, success bool, errMsg string) error {
	eventType := domain.OTPVerifyEvent
	if !success {
		eventType = domain.OTPFailureEvent
	}
	event := domain.NewAuditEvent(eventType, userID).WithMetadata("destination", destination)
	if !success {
		event.WithError(errMsg)
	}
	return a.LogEvent(ctx, event)
}

// LogUserLogin implements domain.AuditLogger
func (a *AuditLoggerImpl) LogUserLogin(ctx context.Context, userID, identifier string, success bool, errMsg string) error {
	eventType := domain.UserLoginEvent
	if !success {
		eventType = domain.UserLoginFailureEvent
	}
	event := domain.NewAuditEvent(eventType, userID).WithMetadata("identifier", identifier)
	if !success {
		event.WithError(errMsg)
	}
	return a.LogEvent(ctx, event)
}

// LogUserRegistration implements domain.AuditLogger
func (a *AuditLoggerImpl) LogUserRegistration(ctx context.Context, userID, email, phone string) error {
	return a.LogEvent(ctx, domain.NewAuditEvent(domain.UserRegistrationEvent, userID).
		WithEmail(email).
		WithPhone(phone))
}

// LogUserLogout implements domain.AuditLogger
func (a *AuditLoggerImpl) LogUserLogout(ctx context.Context, userID, tokenID string) error {
	return a.LogEvent(ctx, domain.NewAuditEvent(domain.UserLogoutEvent, userID).
		WithMetadata("token_id", tokenID))
}

// LogAccessAttempt implements domain.AuditLogger
func (a *AuditLoggerImpl) LogAccessAttempt(ctx context.Context, userID, resource, action string, granted bool) error {
	eventType := domain.AccessGrantedEvent
	if !granted {
		eventType = domain.AccessDeniedEvent
	}
	event := domain.NewAuditEvent(eventType, userID).
		WithMetadata("resource", resource).
		WithMetadata("action", action)
	event.Success = granted
	return a.LogEvent(ctx, event)
}
