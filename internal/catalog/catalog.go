// Package catalog maps notification events to their subject line,
// template name, and enablement policy key, and decides whether a
// given event is currently enabled for dispatch.
package catalog

import (
	"fmt"

	"github.com/noshahi-devs/notification-service/internal/models"
)

// Entry is the static metadata behind one notification event. Subject
// may be a format string interpolating a single payload value; SubjectKey
// names the payload key feeding it (absent keys resolve to "").
type Entry struct {
	Subject    string
	SubjectKey string
	Template   string
	PolicyKey  string
}

var entries = map[models.NotificationEvent]Entry{
	models.EventLoginAlert:            {Subject: "New Login Alert - Noshahi Institute", Template: "LoginAlert", PolicyKey: "SendLoginAlert"},
	models.EventNewAccountCreation:    {Subject: "Welcome to Noshahi Institute - Account Created", Template: "NewAccountCreation", PolicyKey: "SendNewAccountCreation"},
	models.EventPasswordResetRequest:  {Subject: "Password Reset Request - Noshahi Institute", Template: "PasswordReset", PolicyKey: "SendPasswordResetRequest"},
	models.EventExamSchedulePublished: {Subject: "Exam Schedule Published - %s", SubjectKey: "ExamName", Template: "ExamSchedulePublished", PolicyKey: "SendExamSchedulePublished"},
	models.EventExamDateUpdated:       {Subject: "Exam Date Updated - %s", SubjectKey: "ExamName", Template: "ExamDateUpdated", PolicyKey: "SendExamDateUpdated"},
	models.EventResultAnnounced:       {Subject: "Results Announced - %s", SubjectKey: "ExamName", Template: "ResultAnnounced", PolicyKey: "SendResultAnnounced"},
	models.EventResultUpdated:         {Subject: "Results Updated - %s", SubjectKey: "ExamName", Template: "ResultUpdated", PolicyKey: "SendResultUpdated"},
	models.EventLeaveApproved:         {Subject: "Leave Request Approved", Template: "LeaveApproved", PolicyKey: "SendLeaveApproved"},
	models.EventLeaveRejected:         {Subject: "Leave Request Rejected", Template: "LeaveRejected", PolicyKey: "SendLeaveRejected"},
	models.EventTeacherAssigned:       {Subject: "New Teaching Assignment", Template: "TeacherAssigned", PolicyKey: "SendTeacherAssigned"},
	models.EventClassOrSectionChange:  {Subject: "Class/Section Change Notification", Template: "ClassSectionChange", PolicyKey: "SendClassOrSectionChange"},
	models.EventFeeVoucherGenerated:   {Subject: "Fee Voucher Generated - %s", SubjectKey: "Month", Template: "FeeVoucherGenerated", PolicyKey: "SendFeeVoucherGenerated"},
	models.EventFeePaymentReceived:    {Subject: "Fee Payment Received", Template: "FeePaymentReceived", PolicyKey: "SendFeePaymentReceived"},
	models.EventSalarySlipGenerated:   {Subject: "Salary Slip - %s", SubjectKey: "Month", Template: "SalarySlipGenerated", PolicyKey: "SendSalarySlipGenerated"},
	models.EventAnnouncementPublished: {Subject: "Important Announcement - Noshahi Institute", Template: "AnnouncementPublished", PolicyKey: "SendAnnouncements"},
	models.EventMaintenanceAlert:      {Subject: "System Maintenance Alert", Template: "MaintenanceAlert", PolicyKey: "SendMaintenanceAlerts"},
}

// Resolve returns the subject line, template name, and policy key for
// an event. Subject interpolation pulls from the payload map; missing
// keys interpolate as the empty string. An unknown event is a
// programming error and panics.
func Resolve(event models.NotificationEvent, data map[string]string) (subject, template, policyKey string) {
	entry, ok := entries[event]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown notification event %q", event))
	}
	subject = entry.Subject
	if entry.SubjectKey != "" {
		subject = fmt.Sprintf(entry.Subject, data[entry.SubjectKey])
	}
	return subject, entry.Template, entry.PolicyKey
}
