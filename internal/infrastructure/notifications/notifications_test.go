package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/you/streamsvc/internal/mocks"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeMessages struct {
	params []*twilioApi.CreateMessageParams
	err    error
}

func (f *fakeMessages) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = append(f.params, params)
	return &twilioApi.ApiV2010Message{}, f.err
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("expected a deadline")
	}
	f.messages = append(f.messages, msgs...)
	return f.err
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

type fakePublisher struct {
	sent []EmailMessage
}

func (f *fakePublisher) PublishEmail(ctx context.Context, msg EmailMessage) error {
	f.sent = append(f.sent, msg)
	return nil
}

func TestTwilioServiceImpl_SendSMS(t *testing.T) {
	msgs := &fakeMessages{}
	svc := &TwilioServiceImpl{messages: msgs, fromNumber: "+15550001111", logger: zap.NewNop()}

	require.NoError(t, svc.SendSMS(context.Background(), "+201000000000", "hello"))
	require.Len(t, msgs.params, 1)
	assert.Equal(t, "+201000000000", *msgs.params[0].To)
	assert.Equal(t, "+15550001111", *msgs.params[0].From)
	assert.Equal(t, "hello", *msgs.params[0].Body)

	msgs.err = errors.New("bad number")
	err := svc.SendSMS(context.Background(), "+0", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send SMS")
}

func TestTwilioServiceImpl_MockWhenUnconfigured(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	msgs := &fakeMessages{}
	svc := &TwilioServiceImpl{messages: msgs, logger: zap.New(core)}

	require.NoError(t, svc.SendSMS(context.Background(), "+201000000000", "code 123456"))
	require.NoError(t, svc.SendEmail(context.Background(), "a@example.com", "subject", "body"))

	assert.Empty(t, msgs.params)
	assert.Equal(t, 1, logs.FilterMessage("mock sms").Len())
	assert.Equal(t, 1, logs.FilterMessage("mock email").Len())
}

func TestTwilioServiceImpl_SendEmailPublishes(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewTwilioService("AC123", "token", "", pub, zap.NewNop())

	require.NoError(t, svc.SendEmail(context.Background(), "a@example.com", "Hi", "Body"))
	require.Len(t, pub.sent, 1)
	assert.Equal(t, EmailMessage{To: "a@example.com", Subject: "Hi", Body: "Body"}, pub.sent[0])
}

func TestProducer_PublishEmail(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w, logger: zap.NewNop()}
	sentAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, p.PublishEmail(context.Background(), EmailMessage{To: "a@example.com", Subject: "S", Body: "B", SentAt: sentAt}))
	require.Len(t, w.messages, 1)
	assert.Equal(t, []byte("a@example.com"), w.messages[0].Key)

	var decoded EmailMessage
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &decoded))
	assert.Equal(t, "S", decoded.Subject)
	assert.True(t, decoded.SentAt.Equal(sentAt))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProducer_SkipsWithoutBroker(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := NewProducer("", "notifications.email", "", "", zap.New(core))

	require.NoError(t, p.PublishEmail(context.Background(), EmailMessage{To: "a@example.com"}))
	assert.Equal(t, 1, logs.Len())
	require.NoError(t, p.Close())

	var nilProducer *Producer
	assert.NoError(t, nilProducer.PublishEmail(context.Background(), EmailMessage{}))
}

func TestDispatcherImpl_Send(t *testing.T) {
	notifier := mocks.NewMockNotificationService()
	var smsTo, smsBody, emailTo, emailSubject string
	notifier.SendSMSFunc = func(ctx context.Context, to, message string) error {
		smsTo, smsBody = to, message
		return nil
	}
	notifier.SendEmailFunc = func(ctx context.Context, to, subject, body string) error {
		emailTo, emailSubject = to, subject
		return nil
	}
	d := NewOTPDispatcher(notifier, 10*time.Minute)

	require.NoError(t, d.Send(context.Background(), "+201000000000", "123456"))
	assert.Equal(t, "+201000000000", smsTo)
	assert.Equal(t, "Your verification code is 123456. It expires in 10 minutes.", smsBody)

	require.NoError(t, d.Send(context.Background(), "a@example.com", "654321"))
	assert.Equal(t, "a@example.com", emailTo)
	assert.Equal(t, "Your verification code", emailSubject)
}
