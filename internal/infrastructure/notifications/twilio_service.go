package notifications

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/you/streamsvc/domain"
	"go.uber.org/zap"
)

// messageCreator is the part of the Twilio REST API used to send SMS
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioServiceImpl implements domain.NotificationService. SMS goes through Twilio,
// email is handed to the configured EmailPublisher.
type TwilioServiceImpl struct {
	messages   messageCreator
	fromNumber string
	email      EmailPublisher
	logger     *zap.Logger
}

// NewTwilioService creates a new Twilio notification service. A nil email publisher
// logs outgoing email instead of sending it.
func NewTwilioService(accountSID, authToken, fromNumber string, email EmailPublisher, logger *zap.Logger) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioServiceImpl{
		messages:   client.Api,
		fromNumber: fromNumber,
		email:      email,
		logger:     logger,
	}
}

// SendSMS implements domain.NotificationService
func (t *TwilioServiceImpl) SendSMS(ctx context.Context, to, message string) error {
	// If credentials are not configured, log instead of sending
	if t.fromNumber == "" {
		t.logger.Info("mock sms", zap.String("to", to), zap.String("message", message))
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	if _, err := t.messages.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}

// SendEmail implements domain.NotificationService
func (t *TwilioServiceImpl) SendEmail(ctx context.Context, to, subject, body string) error {
	if t.email == nil {
		t.logger.Info("mock email", zap.String("to", to), zap.String("subject", subject), zap.String("body", body))
		return nil
	}

	if err := t.email.PublishEmail(ctx, EmailMessage{To: to, Subject: subject, Body: body}); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
