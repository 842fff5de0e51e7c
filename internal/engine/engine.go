// Package engine is the notification dispatch engine: it resolves an
// event to a subject and template, checks the enablement policy,
// renders the body, sends over the transport with bounded retry, and
// records one audit log row per terminal outcome.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/noshahi-devs/notification-service/internal/catalog"
	"github.com/noshahi-devs/notification-service/internal/config"
	"github.com/noshahi-devs/notification-service/internal/models"
	"github.com/noshahi-devs/notification-service/internal/templates"
)

// Transport performs one delivery attempt of a fully built message and
// returns the transport message id.
type Transport interface {
	Send(ctx context.Context, req models.SendRequest) (string, error)
}

// LogStore is the append-only sink for terminal delivery outcomes.
type LogStore interface {
	InsertDeliveryLog(ctx context.Context, log models.DeliveryLog) error
}

// PolicyStore supplies the current enablement policy. It is consulted
// on every dispatch so admin toggles apply to the next send.
type PolicyStore interface {
	GetNotificationPolicy(ctx context.Context) (models.NotificationPolicy, error)
}

// Alerter is the engine's own diagnostics channel, used for failures
// that must not propagate to callers (e.g. the log store being down).
type Alerter interface {
	Alert(ctx context.Context, message string)
}

// Outcome is the terminal result of one dispatch, published to
// subscribed monitors.
type Outcome struct {
	Recipient string     `json:"recipient"`
	Subject   string     `json:"subject"`
	Event     string     `json:"event"`
	Status    string     `json:"status"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// OutcomeSink receives terminal outcomes for live monitoring.
type OutcomeSink interface {
	Publish(outcome Outcome)
}

// StaticPolicyStore serves a fixed policy, for installs without a
// settings table and for tests.
type StaticPolicyStore struct {
	P models.NotificationPolicy
}

func (s StaticPolicyStore) GetNotificationPolicy(context.Context) (models.NotificationPolicy, error) {
	return s.P, nil
}

// Engine is the single entry point for sending notifications.
type Engine struct {
	cfg       config.EmailConfig
	logger    *logrus.Logger
	renderer  *templates.Renderer
	transport Transport
	logs      LogStore
	policies  PolicyStore
	ops       Alerter
	monitor   OutcomeSink
}

// New constructs an Engine. ops and monitor may be nil.
func New(cfg config.EmailConfig, logger *logrus.Logger, renderer *templates.Renderer,
	transport Transport, logs LogStore, policies PolicyStore) *Engine {
	return &Engine{
		cfg:       cfg,
		logger:    logger,
		renderer:  renderer,
		transport: transport,
		logs:      logs,
		policies:  policies,
	}
}

// WithAlerter attaches the diagnostics alerter.
func (e *Engine) WithAlerter(ops Alerter) *Engine {
	e.ops = ops
	return e
}

// WithMonitor attaches a live outcome sink.
func (e *Engine) WithMonitor(sink OutcomeSink) *Engine {
	e.monitor = sink
	return e
}

// SendNotification dispatches an event-driven notification: enablement
// gate, catalog lookup, template render, then the retry-controlled
// send. Callers must treat the result as best effort; a notification
// failure never surfaces as an error from this method.
func (e *Engine) SendNotification(ctx context.Context, event models.NotificationEvent,
	recipientEmail, recipientName string, data map[string]string) models.SendResult {

	policy, err := e.policies.GetNotificationPolicy(ctx)
	if err != nil {
		// Fail open: a broken settings source must not silence the school.
		e.logger.Warnf("Policy load failed, using defaults: %v", err)
		policy = models.DefaultPolicy()
	}

	if !catalog.Enabled(event, policy) {
		e.logger.Infof("Notification %s is disabled, skipping email to %s", event, recipientEmail)
		return models.SendResult{
			Success: false,
			Message: fmt.Sprintf("Notification type %s is disabled", event),
		}
	}

	subject, templateName, _ := catalog.Resolve(event, data)

	req := models.SendRequest{
		To:           recipientEmail,
		ToName:       recipientName,
		Subject:      subject,
		TemplateData: data,
	}

	body, err := e.renderer.Render(templateName, data)
	if err != nil {
		e.logger.Errorf("Template %s render failed: %v", templateName, err)
		res := models.SendResult{
			Success:      false,
			Message:      "Failed to render template",
			ErrorDetails: err.Error(),
		}
		e.recordOutcome(ctx, req, string(event), res)
		return res
	}
	req.HTMLBody = body

	return e.dispatch(ctx, req, string(event))
}

// Send dispatches a fully formed request as-is, without event
// resolution or enablement gating.
func (e *Engine) Send(ctx context.Context, req models.SendRequest) models.SendResult {
	return e.dispatch(ctx, req, eventLabel(req))
}

// SendTemplated renders the named template with the request's payload
// and dispatches the result. Used for ad hoc templated sends outside
// the event catalog.
func (e *Engine) SendTemplated(ctx context.Context, req models.SendRequest, templateName string) models.SendResult {
	body, err := e.renderer.Render(templateName, req.TemplateData)
	if err != nil {
		e.logger.Errorf("Template %s render failed: %v", templateName, err)
		res := models.SendResult{
			Success:      false,
			Message:      "Failed to render template",
			ErrorDetails: err.Error(),
		}
		e.recordOutcome(ctx, req, eventLabel(req), res)
		return res
	}
	req.HTMLBody = body
	return e.dispatch(ctx, req, eventLabel(req))
}

// TestConnection sends a fixed diagnostic message to the sender's own
// address, exercising the full transport path.
func (e *Engine) TestConnection(ctx context.Context) models.SendResult {
	req := models.SendRequest{
		To:             e.cfg.SenderEmail,
		ToName:         "Admin",
		Subject:        "SMTP Connection Test",
		HTMLBody:       "<h1>Success</h1><p>The SMTP connection is working correctly.</p>",
		IsHighPriority: true,
	}
	return e.dispatch(ctx, req, "ConnectionTest")
}

// eventLabel derives the audit log label for raw and ad hoc sends.
func eventLabel(req models.SendRequest) string {
	if label, ok := req.TemplateData["EventType"]; ok && label != "" {
		return label
	}
	return "General"
}
