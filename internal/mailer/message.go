package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noshahi-devs/notification-service/internal/models"
)

// buildMessage assembles the full RFC 5322 message for one request and
// returns the wire bytes plus the generated Message-ID.
func buildMessage(req models.SendRequest, senderEmail, senderName, replyTo string) ([]byte, string, error) {
	if !strings.Contains(req.To, "@") {
		return nil, "", fmt.Errorf("invalid email address: %s", req.To)
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), domainOf(senderEmail))

	var buf bytes.Buffer
	write := func(format string, args ...interface{}) {
		fmt.Fprintf(&buf, format+"\r\n", args...)
	}

	write("From: %s", formatAddress(senderEmail, senderName))
	write("To: %s", formatAddress(req.To, req.ToName))
	if len(req.Cc) > 0 {
		write("Cc: %s", strings.Join(req.Cc, ", "))
	}
	if req.ReplyTo != "" {
		replyTo = req.ReplyTo
	}
	if replyTo != "" {
		write("Reply-To: %s", replyTo)
	}
	write("Subject: %s", mime.QEncoding.Encode("utf-8", req.Subject))
	write("Message-ID: %s", messageID)
	write("Date: %s", time.Now().Format(time.RFC1123Z))
	if req.IsHighPriority {
		write("X-Priority: 1")
		write("Importance: high")
	}
	write("MIME-Version: 1.0")

	if len(req.Attachments) == 0 && req.PlainTextBody == "" {
		write("Content-Type: text/html; charset=utf-8")
		write("")
		buf.WriteString(req.HTMLBody)
		buf.WriteString("\r\n")
		return buf.Bytes(), messageID, nil
	}

	mw := multipart.NewWriter(&buf)
	write("Content-Type: multipart/mixed; boundary=%q", mw.Boundary())
	write("")

	if err := writeBody(mw, req); err != nil {
		return nil, "", err
	}
	for _, att := range req.Attachments {
		if err := writeAttachment(mw, att); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize message: %w", err)
	}
	return buf.Bytes(), messageID, nil
}

// writeBody emits the HTML body, paired with a plain-text alternative
// when the request carries one.
func writeBody(mw *multipart.Writer, req models.SendRequest) error {
	if req.PlainTextBody == "" {
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type": {"text/html; charset=utf-8"},
		})
		if err != nil {
			return fmt.Errorf("failed to create html part: %w", err)
		}
		_, err = part.Write([]byte(req.HTMLBody))
		return err
	}

	var alt bytes.Buffer
	aw := multipart.NewWriter(&alt)
	text, err := aw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=utf-8"},
	})
	if err != nil {
		return fmt.Errorf("failed to create text part: %w", err)
	}
	if _, err := text.Write([]byte(req.PlainTextBody)); err != nil {
		return err
	}
	html, err := aw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=utf-8"},
	})
	if err != nil {
		return fmt.Errorf("failed to create html part: %w", err)
	}
	if _, err := html.Write([]byte(req.HTMLBody)); err != nil {
		return err
	}
	if err := aw.Close(); err != nil {
		return err
	}

	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {fmt.Sprintf("multipart/alternative; boundary=%q", aw.Boundary())},
	})
	if err != nil {
		return fmt.Errorf("failed to create alternative part: %w", err)
	}
	_, err = part.Write(alt.Bytes())
	return err
}

func writeAttachment(mw *multipart.Writer, att models.Attachment) error {
	contentType := att.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", att.FileName)},
	})
	if err != nil {
		return fmt.Errorf("failed to create attachment part for %s: %w", att.FileName, err)
	}
	encoded := base64.StdEncoding.EncodeToString(att.Content)
	// 76-char lines per RFC 2045
	for len(encoded) > 76 {
		if _, err := part.Write([]byte(encoded[:76] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[76:]
	}
	_, err = part.Write([]byte(encoded + "\r\n"))
	return err
}

func formatAddress(email, name string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), email)
}

func domainOf(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[i+1:]
	}
	return "localhost"
}
