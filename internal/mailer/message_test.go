package mailer

import (
	"errors"
	"strings"
	"testing"

	"github.com/noshahi-devs/notification-service/internal/models"
)

func TestBuildMessageHeaders(t *testing.T) {
	req := models.SendRequest{
		To:             "student@example.com",
		ToName:         "Student",
		Subject:        "Exam Schedule Published",
		HTMLBody:       "<p>Schedule attached</p>",
		Cc:             []string{"parent@example.com"},
		IsHighPriority: true,
	}
	raw, messageID, err := buildMessage(req, "noreply@noshahi.edu.pk", "Noshahi Institute", "admin@noshahi.edu.pk")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	msg := string(raw)

	for _, want := range []string{
		"From: Noshahi Institute <noreply@noshahi.edu.pk>",
		"To: Student <student@example.com>",
		"Cc: parent@example.com",
		"Reply-To: admin@noshahi.edu.pk",
		"Subject: Exam Schedule Published",
		"X-Priority: 1",
		"MIME-Version: 1.0",
		"<p>Schedule attached</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if !strings.HasSuffix(messageID, "@noshahi.edu.pk>") {
		t.Fatalf("unexpected message id %q", messageID)
	}
}

func TestBuildMessageRequestReplyToWins(t *testing.T) {
	req := models.SendRequest{
		To:      "student@example.com",
		Subject: "Hi",
		ReplyTo: "registrar@noshahi.edu.pk",
	}
	raw, _, err := buildMessage(req, "noreply@noshahi.edu.pk", "", "admin@noshahi.edu.pk")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "Reply-To: registrar@noshahi.edu.pk") {
		t.Fatal("request Reply-To must override the configured default")
	}
}

func TestBuildMessageInvalidRecipient(t *testing.T) {
	_, _, err := buildMessage(models.SendRequest{To: "not-an-address"}, "noreply@noshahi.edu.pk", "", "")
	if err == nil {
		t.Fatal("expected error for malformed recipient")
	}
}

func TestBuildMessageWithAttachment(t *testing.T) {
	req := models.SendRequest{
		To:       "student@example.com",
		Subject:  "Fee Voucher",
		HTMLBody: "<p>Voucher attached</p>",
		Attachments: []models.Attachment{
			{FileName: "voucher.pdf", Content: []byte("%PDF-1.4 fake"), ContentType: "application/pdf"},
		},
	}
	raw, _, err := buildMessage(req, "noreply@noshahi.edu.pk", "", "")
	if err != nil {
		t.Fatal(err)
	}
	msg := string(raw)
	for _, want := range []string{
		"Content-Type: multipart/mixed",
		"Content-Type: application/pdf",
		`attachment; filename="voucher.pdf"`,
		"Content-Transfer-Encoding: base64",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q", want)
		}
	}
}

func TestBuildMessagePlainTextAlternative(t *testing.T) {
	req := models.SendRequest{
		To:            "student@example.com",
		Subject:       "Hi",
		HTMLBody:      "<p>Hello</p>",
		PlainTextBody: "Hello",
	}
	raw, _, err := buildMessage(req, "noreply@noshahi.edu.pk", "", "")
	if err != nil {
		t.Fatal(err)
	}
	msg := string(raw)
	if !strings.Contains(msg, "multipart/alternative") {
		t.Fatal("expected multipart/alternative body")
	}
	if !strings.Contains(msg, "text/plain") || !strings.Contains(msg, "text/html") {
		t.Fatal("expected both body parts")
	}
}

func TestIsTransient(t *testing.T) {
	if !IsTransient(transient(errors.New("connection refused"))) {
		t.Fatal("transient SendError must report transient")
	}
	if IsTransient(fatal(errors.New("bad address"))) {
		t.Fatal("fatal SendError must not report transient")
	}
	if IsTransient(errors.New("plain error")) {
		t.Fatal("plain errors are fatal by default")
	}
}
