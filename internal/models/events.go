package models

// NotificationEvent enumerates every domain occurrence that can trigger
// an email notification. The set is closed; adding a kind means adding
// a catalog entry and a policy flag alongside it.
type NotificationEvent string

const (
	// Authentication
	EventLoginAlert           NotificationEvent = "LoginAlert"
	EventNewAccountCreation   NotificationEvent = "NewAccountCreation"
	EventPasswordResetRequest NotificationEvent = "PasswordResetRequest"

	// Academic
	EventExamSchedulePublished NotificationEvent = "ExamSchedulePublished"
	EventExamDateUpdated       NotificationEvent = "ExamDateUpdated"
	EventResultAnnounced       NotificationEvent = "ResultAnnounced"
	EventResultUpdated         NotificationEvent = "ResultUpdated"

	// Leave
	EventLeaveApproved NotificationEvent = "LeaveApproved"
	EventLeaveRejected NotificationEvent = "LeaveRejected"

	// Assignment
	EventTeacherAssigned      NotificationEvent = "TeacherAssigned"
	EventClassOrSectionChange NotificationEvent = "ClassOrSectionChange"

	// Finance
	EventFeeVoucherGenerated NotificationEvent = "FeeVoucherGenerated"
	EventFeePaymentReceived  NotificationEvent = "FeePaymentReceived"
	EventSalarySlipGenerated NotificationEvent = "SalarySlipGenerated"

	// System
	EventAnnouncementPublished NotificationEvent = "AnnouncementPublished"
	EventMaintenanceAlert      NotificationEvent = "MaintenanceAlert"
)

// Events lists every known notification event.
var Events = []NotificationEvent{
	EventLoginAlert,
	EventNewAccountCreation,
	EventPasswordResetRequest,
	EventExamSchedulePublished,
	EventExamDateUpdated,
	EventResultAnnounced,
	EventResultUpdated,
	EventLeaveApproved,
	EventLeaveRejected,
	EventTeacherAssigned,
	EventClassOrSectionChange,
	EventFeeVoucherGenerated,
	EventFeePaymentReceived,
	EventSalarySlipGenerated,
	EventAnnouncementPublished,
	EventMaintenanceAlert,
}

// IsValidEvent checks whether an event kind is recognized.
func IsValidEvent(e NotificationEvent) bool {
	for _, known := range Events {
		if e == known {
			return true
		}
	}
	return false
}
