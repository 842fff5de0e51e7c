package models

import "time"

// Delivery outcome statuses persisted in the log store.
const (
	StatusSent   = "Sent"
	StatusFailed = "Failed"
)

// EntityRefs holds optional foreign references from a delivery log
// record back to the domain entity that triggered it.
type EntityRefs struct {
	UserID    *int `json:"user_id,omitempty"`
	ExamID    *int `json:"exam_id,omitempty"`
	StudentID *int `json:"student_id,omitempty"`
	TeacherID *int `json:"teacher_id,omitempty"`
	FeeID     *int `json:"fee_id,omitempty"`
}

// DeliveryLog is the durable audit record for one terminal send
// outcome. Exactly one record is written per request that reaches the
// retry controller, never one per attempt.
type DeliveryLog struct {
	ID               int64      `json:"id"`
	RecipientEmail   string     `json:"recipient_email"`
	RecipientName    string     `json:"recipient_name"`
	Subject          string     `json:"subject"`
	HTMLBody         string     `json:"html_body"`
	NotificationType string     `json:"notification_type"`
	Status           string     `json:"status"`
	ErrorMessage     string     `json:"error_message,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	SentAt           *time.Time `json:"sent_at,omitempty"`
	RetryCount       int        `json:"retry_count"`
	MessageID        string     `json:"message_id,omitempty"`
	Refs             EntityRefs `json:"refs,omitempty"`
	Metadata         string     `json:"metadata,omitempty"`
}
