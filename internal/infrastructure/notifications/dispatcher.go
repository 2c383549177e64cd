package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/you/streamsvc/domain"
)

const otpEmailSubject = "Your verification code"

// DispatcherImpl implements domain.OTPDispatcher, choosing email for destinations
// containing '@' and SMS otherwise
type DispatcherImpl struct {
	notifier domain.NotificationService
	ttl      time.Duration
}

// NewOTPDispatcher creates a dispatcher that tells recipients the code expires after ttl
func NewOTPDispatcher(notifier domain.NotificationService, ttl time.Duration) domain.OTPDispatcher {
	return &DispatcherImpl{notifier: notifier, ttl: ttl}
}

// Send implements domain.OTPDispatcher
func (d *DispatcherImpl) Send(ctx context.Context, destination, code string) error {
	message := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(d.ttl.Minutes()))

	if strings.Contains(destination, "@") {
		return d.notifier.SendEmail(ctx, destination, otpEmailSubject, message)
	}
	return d.notifier.SendSMS(ctx, destination, message)
}
