package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// OTP events
	OTPRequestEvent AuditEventType = "OTP_REQUESTED"
	OTPVerifyEvent  AuditEventType = "OTP_VERIFIED"
	OTPFailureEvent AuditEventType = "OTP_VERIFICATION_FAILED"

	// Authentication events
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	UserRegistrationEvent AuditEventType = "USER_REGISTERED"
	UserLogoutEvent       AuditEventType = "USER_LOGOUT"

	// Authorization events
	AccessGrantedEvent AuditEventType = "ACCESS_GRANTED"
	AccessDeniedEvent  AuditEventType = "ACCESS_DENIED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType         `json:"event_type"`
	UserID    string                 `json:"user_id,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Phone     string                 `json:"phone,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	IPAddress string                 `json:"ip_address,omitempty"`
	UserAgent string                 `json:"user_agent,omitempty"`
	ErrorMsg  string                 `json:"error_msg,omitempty"`
	Success   bool                   `json:"success"`
}

// AuditLogger defines operations for audit logging
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent) error

	LogOTPRequest(ctx context.Context, userID, destination string) error
	LogOTPVerification(ctx context.Context, userID, destination string, success bool, errMsg string) error

	LogUserLogin(ctx context.Context, userID, identifier string, success bool, errMsg string) error
	LogUserRegistration(ctx context.Context, userID, email, phone string) error
	LogUserLogout(ctx context.Context, userID, tokenID string) error

	LogAccessAttempt(ctx context.Context, userID, resource, action string, granted bool) error
}

// ClientContext represents client information extracted from an HTTP request
type ClientContext struct {
	IPAddress string
	UserAgent string
}

type clientContextKey struct{}

// WithClientContext returns a context carrying client information for audit events.
func WithClientContext(ctx context.Context, client *ClientContext) context.Context {
	return context.WithValue(ctx, clientContextKey{}, client)
}

// ClientContextFrom returns the client information stored on ctx, if any.
func ClientContextFrom(ctx context.Context) *ClientContext {
	client, _ := ctx.Value(clientContextKey{}).(*ClientContext)
	return client
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, userID string) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]interface{}),
		Success:   true,
	}
}

// WithError marks the event failed with the given message
func (e *AuditEvent) WithError(msg string) *AuditEvent {
	e.Success = false
	e.ErrorMsg = msg
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithPhone sets the phone field
func (e *AuditEvent) WithPhone(phone string) *AuditEvent {
	e.Phone = phone
	return e
}

// WithClientContext sets client context information
func (e *AuditEvent) WithClientContext(ctx *ClientContext) *AuditEvent {
	if ctx != nil {
		e.IPAddress = ctx.IPAddress
		e.UserAgent = ctx.UserAgent
	}
	return e
}

// WithMetadata adds metadata to the event
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	e.Metadata[key] = value
	return e
}
