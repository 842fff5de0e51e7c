package catalog

import (
	"strings"
	"testing"

	"github.com/noshahi-devs/notification-service/internal/models"
)

func TestResolveCoversEveryEvent(t *testing.T) {
	for _, event := range models.Events {
		subject, template, policyKey := Resolve(event, nil)
		if subject == "" || template == "" || policyKey == "" {
			t.Fatalf("%s: incomplete catalog entry (%q, %q, %q)", event, subject, template, policyKey)
		}
	}
}

func TestResolveSubjectInterpolation(t *testing.T) {
	subject, template, _ := Resolve(models.EventExamSchedulePublished, map[string]string{"ExamName": "Mid-Term"})
	if !strings.Contains(subject, "Mid-Term") {
		t.Fatalf("expected exam name in subject, got %q", subject)
	}
	if template != "ExamSchedulePublished" {
		t.Fatalf("unexpected template %q", template)
	}

	// Absent payload keys interpolate as empty, never error.
	subject, _, _ = Resolve(models.EventSalarySlipGenerated, nil)
	if subject != "Salary Slip - " {
		t.Fatalf("expected empty interpolation, got %q", subject)
	}
}

func TestResolveUnknownEventPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown event")
		}
	}()
	Resolve(models.NotificationEvent("NoSuchEvent"), nil)
}

func TestEnabledMasterSwitch(t *testing.T) {
	policy := models.DefaultPolicy()
	policy.EnableNotifications = false
	for _, event := range models.Events {
		if Enabled(event, policy) {
			t.Fatalf("%s: master switch off must disable everything", event)
		}
	}
}

func TestEnabledPerEventFlags(t *testing.T) {
	policy := models.DefaultPolicy()
	policy.Academic.SendResultAnnounced = false
	policy.Leave.SendLeaveRejected = false

	if Enabled(models.EventResultAnnounced, policy) {
		t.Fatal("expected ResultAnnounced disabled")
	}
	if Enabled(models.EventLeaveRejected, policy) {
		t.Fatal("expected LeaveRejected disabled")
	}
	if !Enabled(models.EventResultUpdated, policy) {
		t.Fatal("expected ResultUpdated still enabled")
	}
}

func TestEnabledUnknownEventDefaultsOn(t *testing.T) {
	if !Enabled(models.NotificationEvent("FutureEvent"), models.DefaultPolicy()) {
		t.Fatal("events without a policy flag default to enabled")
	}
}
