// Package notify delivers alert-match notifications: an email to the alert
// owner via SES and a structured publish to an SNS topic for downstream
// consumers. It subscribes to the event bus rather than being called by the
// engine directly.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	stderrors "github.com/Growthlabsg/venturematch/internal/common/errors"
	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/common/metrics"
	"github.com/Growthlabsg/venturematch/internal/events"
	"github.com/Growthlabsg/venturematch/internal/models"
)

type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Config struct {
	AWSRegion string
	Sender    string
	TopicARN  string
}

// AlertMatch is the event payload published when a new job satisfies a
// saved alert.
type AlertMatch struct {
	Alert     models.Alert `json:"alert"`
	Job       models.Job   `json:"job"`
	Recipient string       `json:"recipient,omitempty"`
}

type Notifier struct {
	config    *Config
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func New(ctx context.Context, cfg *Config, log logger.Logger) (*Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Notifier{
		config:    cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

// NewWithClients wires pre-built SES/SNS clients. Used by tests.
func NewWithClients(cfg *Config, sesClient SESService, snsClient SNSService, log logger.Logger) *Notifier {
	return &Notifier{
		config:    cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "notifier"}),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

// HandleAlertMatched is the event-bus handler for events.TopicAlertMatched.
func (n *Notifier) HandleAlertMatched(ctx context.Context, evt events.Event) {
	match, ok := evt.Payload.(AlertMatch)
	if !ok {
		n.logger.Warn("unexpected payload on alert.matched", map[string]interface{}{
			"eventId": evt.ID,
		})
		return
	}

	if err := n.Send(ctx, match); err != nil {
		n.logger.Error("alert notification failed", map[string]interface{}{
			"alertId": match.Alert.ID,
			"jobId":   match.Job.ID,
			"error":   err,
		})
	}
}

// Send delivers one alert match: SNS publish always (when a topic is
// configured), SES email when a recipient address is known.
func (n *Notifier) Send(ctx context.Context, match AlertMatch) error {
	if n.config.TopicARN != "" {
		payload, err := json.Marshal(match)
		if err != nil {
			return stderrors.NewNotificationSendFailedError(err.Error())
		}
		_, err = n.snsClient.Publish(ctx, &sns.PublishInput{
			TopicArn: aws.String(n.config.TopicARN),
			Subject:  aws.String("alert.matched"),
			Message:  aws.String(string(payload)),
		})
		if err != nil {
			return stderrors.NewNotificationSendFailedError(err.Error())
		}
		metrics.NotificationsSent.WithLabelValues("sns").Inc()
	}

	if match.Recipient != "" {
		subject := fmt.Sprintf("New job matches your alert: %s", match.Job.Title)
		body := fmt.Sprintf(
			"A new posting matches one of your saved job alerts.\n\n%s\n%s\n\nLocation: %s\n",
			match.Job.Title, match.Job.Description, match.Job.Location,
		)

		_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
			Source: aws.String(n.config.Sender),
			Destination: &sestypes.Destination{
				ToAddresses: []string{match.Recipient},
			},
			Message: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(body)},
				},
			},
		})
		if err != nil {
			return stderrors.NewNotificationSendFailedError(err.Error())
		}
		metrics.NotificationsSent.WithLabelValues("email").Inc()
	}

	n.logger.Info("alert notification delivered", map[string]interface{}{
		"alertId": match.Alert.ID,
		"jobId":   match.Job.ID,
	})
	return nil
}
