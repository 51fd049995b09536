package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "github.com/Growthlabsg/venturematch/internal/common/errors"
	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/events"
	"github.com/Growthlabsg/venturematch/internal/models"
)

type stubSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (s *stubSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	s.inputs = append(s.inputs, params)
	if s.err != nil {
		return nil, s.err
	}
	return &ses.SendEmailOutput{}, nil
}

type stubSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (s *stubSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	s.inputs = append(s.inputs, params)
	if s.err != nil {
		return nil, s.err
	}
	return &sns.PublishOutput{}, nil
}

func createTestMatch() AlertMatch {
	return AlertMatch{
		Alert: models.Alert{ID: "alert-1", UserID: "user-1", Enabled: true},
		Job: models.Job{
			ID:          "job-1",
			Title:       "Backend Engineer",
			Description: "Go services",
			Location:    "Singapore",
		},
		Recipient: "ada@example.com",
	}
}

func TestSend_EmailAndTopic(t *testing.T) {
	sesStub := &stubSES{}
	snsStub := &stubSNS{}
	notifier := NewWithClients(
		&Config{Sender: "alerts@venturematch.io", TopicARN: "arn:aws:sns:ap-southeast-1:1:alerts"},
		sesStub, snsStub, logger.NewTestLogger(t),
	)

	match := createTestMatch()
	require.NoError(t, notifier.Send(context.Background(), match))

	require.Len(t, snsStub.inputs, 1)
	assert.Equal(t, "arn:aws:sns:ap-southeast-1:1:alerts", *snsStub.inputs[0].TopicArn)

	var published AlertMatch
	require.NoError(t, json.Unmarshal([]byte(*snsStub.inputs[0].Message), &published))
	assert.Equal(t, "alert-1", published.Alert.ID)
	assert.Equal(t, "job-1", published.Job.ID)

	require.Len(t, sesStub.inputs, 1)
	email := sesStub.inputs[0]
	assert.Equal(t, "alerts@venturematch.io", *email.Source)
	assert.Equal(t, []string{"ada@example.com"}, email.Destination.ToAddresses)
	assert.Contains(t, *email.Message.Subject.Data, "Backend Engineer")
}

func TestSend_NoRecipientSkipsEmail(t *testing.T) {
	sesStub := &stubSES{}
	snsStub := &stubSNS{}
	notifier := NewWithClients(
		&Config{TopicARN: "arn:aws:sns:ap-southeast-1:1:alerts"},
		sesStub, snsStub, logger.NewNoOpLogger(),
	)

	match := createTestMatch()
	match.Recipient = ""
	require.NoError(t, notifier.Send(context.Background(), match))

	assert.Len(t, snsStub.inputs, 1)
	assert.Empty(t, sesStub.inputs)
}

func TestSend_NoTopicSkipsPublish(t *testing.T) {
	sesStub := &stubSES{}
	snsStub := &stubSNS{}
	notifier := NewWithClients(
		&Config{Sender: "alerts@venturematch.io"},
		sesStub, snsStub, logger.NewNoOpLogger(),
	)

	require.NoError(t, notifier.Send(context.Background(), createTestMatch()))

	assert.Empty(t, snsStub.inputs)
	assert.Len(t, sesStub.inputs, 1)
}

func TestSend_PublishFailure(t *testing.T) {
	snsStub := &stubSNS{err: errors.New("throttled")}
	notifier := NewWithClients(
		&Config{TopicARN: "arn:aws:sns:ap-southeast-1:1:alerts"},
		&stubSES{}, snsStub, logger.NewNoOpLogger(),
	)

	err := notifier.Send(context.Background(), createTestMatch())
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeNotificationSendFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestHandleAlertMatched_ViaBus(t *testing.T) {
	sesStub := &stubSES{}
	notifier := NewWithClients(
		&Config{Sender: "alerts@venturematch.io"},
		sesStub, &stubSNS{}, logger.NewTestLogger(t),
	)

	bus := events.NewBus(logger.NewTestLogger(t))
	sub := bus.Subscribe(events.TopicAlertMatched, notifier.HandleAlertMatched)
	defer sub.Unsubscribe()

	bus.Publish(context.Background(), events.TopicAlertMatched, createTestMatch())

	require.Len(t, sesStub.inputs, 1)
}

func TestHandleAlertMatched_IgnoresForeignPayload(t *testing.T) {
	sesStub := &stubSES{}
	notifier := NewWithClients(
		&Config{Sender: "alerts@venturematch.io"},
		sesStub, &stubSNS{}, logger.NewNoOpLogger(),
	)

	notifier.HandleAlertMatched(context.Background(), events.Event{
		ID:        "evt-1",
		Topic:     events.TopicAlertMatched,
		Timestamp: time.Now(),
		Payload:   "not a match",
	})

	assert.Empty(t, sesStub.inputs)
}
