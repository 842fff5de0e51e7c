package db

import (
	"context"
	"fmt"

	"github.com/noshahi-devs/notification-service/internal/models"
)

// InsertDeliveryLog appends one terminal delivery outcome. Each insert
// is an independent atomic append; historical records are never updated.
func (d *DB) InsertDeliveryLog(ctx context.Context, log models.DeliveryLog) error {
	query := `
        INSERT INTO notification_logs (
            recipient_email, recipient_name, subject, html_body,
            notification_type, status, error_message, created_at, sent_at,
            retry_count, message_id, user_id, exam_id, student_id,
            teacher_id, fee_id, metadata
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := d.Pool.Exec(ctx, query,
		log.RecipientEmail, log.RecipientName, log.Subject, log.HTMLBody,
		log.NotificationType, log.Status, nullIfEmpty(log.ErrorMessage),
		log.CreatedAt, log.SentAt, log.RetryCount, nullIfEmpty(log.MessageID),
		log.Refs.UserID, log.Refs.ExamID, log.Refs.StudentID,
		log.Refs.TeacherID, log.Refs.FeeID, nullIfEmpty(log.Metadata))
	if err != nil {
		return fmt.Errorf("failed to insert delivery log: %w", err)
	}
	return nil
}

// ListRecentDeliveryLogs returns up to limit records ordered newest first.
func (d *DB) ListRecentDeliveryLogs(ctx context.Context, limit int) ([]models.DeliveryLog, error) {
	query := `
        SELECT id, recipient_email, recipient_name, subject, html_body,
               notification_type, status, error_message, created_at, sent_at,
               retry_count, message_id, user_id, exam_id, student_id,
               teacher_id, fee_id, metadata
        FROM notification_logs
        ORDER BY created_at DESC
        LIMIT $1`
	rows, err := d.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery logs: %w", err)
	}
	defer rows.Close()

	var logs []models.DeliveryLog
	for rows.Next() {
		var l models.DeliveryLog
		var errMsg, messageID, metadata *string
		err := rows.Scan(
			&l.ID, &l.RecipientEmail, &l.RecipientName, &l.Subject, &l.HTMLBody,
			&l.NotificationType, &l.Status, &errMsg, &l.CreatedAt, &l.SentAt,
			&l.RetryCount, &messageID, &l.Refs.UserID, &l.Refs.ExamID,
			&l.Refs.StudentID, &l.Refs.TeacherID, &l.Refs.FeeID, &metadata,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery log: %w", err)
		}
		if errMsg != nil {
			l.ErrorMessage = *errMsg
		}
		if messageID != nil {
			l.MessageID = *messageID
		}
		if metadata != nil {
			l.Metadata = *metadata
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
