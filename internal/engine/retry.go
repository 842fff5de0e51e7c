package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/noshahi-devs/notification-service/internal/mailer"
	"github.com/noshahi-devs/notification-service/internal/models"
)

// dispatch runs the bounded retry loop around the transport and always
// records exactly one terminal outcome. Transient failures wait
// RetryDelay * attempt before the next try; fatal failures and context
// cancellation stop the loop immediately.
func (e *Engine) dispatch(ctx context.Context, req models.SendRequest, event string) models.SendResult {
	var res models.SendResult

	for attempt := 1; attempt <= e.cfg.MaxRetryAttempts; attempt++ {
		res.RetryCount = attempt
		e.logger.Infof("Attempting to send email (attempt %d/%d) to %s", attempt, e.cfg.MaxRetryAttempts, req.To)

		messageID, err := e.transport.Send(ctx, req)
		if err == nil {
			now := time.Now().UTC()
			res.Success = true
			res.Message = "Email sent successfully"
			res.ErrorDetails = ""
			res.SentAt = &now
			res.MessageID = messageID
			e.logger.Infof("Email sent successfully to %s", req.To)
			break
		}

		res.Success = false
		res.ErrorDetails = err.Error()

		if !mailer.IsTransient(err) {
			res.Message = "Unexpected error occurred"
			e.logger.Errorf("Fatal error sending email to %s: %v", req.To, err)
			break
		}

		e.logger.Errorf("SMTP error sending email to %s (attempt %d/%d): %v", req.To, attempt, e.cfg.MaxRetryAttempts, err)
		if attempt == e.cfg.MaxRetryAttempts {
			res.Message = "Failed to send email after maximum retry attempts"
			break
		}

		select {
		case <-ctx.Done():
			res.Message = "Send cancelled"
			res.ErrorDetails = ctx.Err().Error()
			e.recordOutcome(ctx, req, event, res)
			return res
		case <-time.After(e.cfg.RetryDelay * time.Duration(attempt)):
		}
	}

	e.recordOutcome(ctx, req, event, res)
	return res
}

// recordOutcome persists the audit row and publishes the outcome to
// any attached monitor. Persistence failures are swallowed here and
// reported only through the logger and the ops alerter; they must
// never mask the send outcome.
func (e *Engine) recordOutcome(ctx context.Context, req models.SendRequest, event string, res models.SendResult) {
	status := models.StatusFailed
	errMsg := res.ErrorDetails
	if res.Success {
		status = models.StatusSent
		errMsg = ""
	}

	outcome := Outcome{
		Recipient: req.To,
		Subject:   req.Subject,
		Event:     event,
		Status:    status,
		SentAt:    res.SentAt,
		Error:     errMsg,
	}
	if e.monitor != nil {
		e.monitor.Publish(outcome)
	}

	if !e.cfg.EnableLogging {
		return
	}

	var metadata string
	if len(req.TemplateData) > 0 {
		if raw, err := json.Marshal(req.TemplateData); err == nil {
			metadata = string(raw)
		}
	}

	log := models.DeliveryLog{
		RecipientEmail:   req.To,
		RecipientName:    req.ToName,
		Subject:          req.Subject,
		HTMLBody:         req.HTMLBody,
		NotificationType: event,
		Status:           status,
		ErrorMessage:     errMsg,
		CreatedAt:        time.Now().UTC(),
		SentAt:           res.SentAt,
		RetryCount:       res.RetryCount,
		MessageID:        res.MessageID,
		Metadata:         metadata,
	}

	// The row must land even when the caller's context is already gone.
	if err := e.logs.InsertDeliveryLog(context.WithoutCancel(ctx), log); err != nil {
		e.logger.Errorf("Failed to persist delivery log for %s: %v", req.To, err)
		if e.ops != nil {
			e.ops.Alert(context.WithoutCancel(ctx), "delivery log insert failed: "+err.Error())
		}
	}
}
