package models

import "time"

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	FileName    string `json:"file_name"`
	Content     []byte `json:"content"`
	ContentType string `json:"content_type"`
}

// SendRequest describes one email to be dispatched. The body may be
// supplied directly (raw sends) or rendered from a template by the
// engine before it reaches the transport.
type SendRequest struct {
	To             string            `json:"to" binding:"required"`
	ToName         string            `json:"to_name"`
	Subject        string            `json:"subject"`
	HTMLBody       string            `json:"html_body"`
	PlainTextBody  string            `json:"plain_text_body,omitempty"`
	Attachments    []Attachment      `json:"attachments,omitempty"`
	ReplyTo        string            `json:"reply_to,omitempty"`
	Cc             []string          `json:"cc,omitempty"`
	Bcc            []string          `json:"bcc,omitempty"`
	TemplateData   map[string]string `json:"template_data,omitempty"`
	IsHighPriority bool              `json:"is_high_priority"`
}

// SendResult is the synchronous outcome of one dispatch, returned to
// the caller. The engine derives the durable DeliveryLog from it.
type SendResult struct {
	Success      bool       `json:"success"`
	Message      string     `json:"message"`
	ErrorDetails string     `json:"error_details,omitempty"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	MessageID    string     `json:"message_id,omitempty"`
	RetryCount   int        `json:"retry_count"`
}

// InstituteInfo carries the branding fields substituted into every
// rendered template.
type InstituteInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Logo    string `json:"logo"`
}
