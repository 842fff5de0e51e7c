package catalog

import "github.com/noshahi-devs/notification-service/internal/models"

// Enabled reports whether an event may be dispatched under the given
// policy. The master switch short-circuits everything; events without
// an explicit flag default to enabled.
func Enabled(event models.NotificationEvent, policy models.NotificationPolicy) bool {
	if !policy.EnableNotifications {
		return false
	}

	switch event {
	case models.EventLoginAlert:
		return policy.Authentication.SendLoginAlert
	case models.EventNewAccountCreation:
		return policy.Authentication.SendNewAccountCreation
	case models.EventPasswordResetRequest:
		return policy.Authentication.SendPasswordResetRequest
	case models.EventExamSchedulePublished:
		return policy.Academic.SendExamSchedulePublished
	case models.EventExamDateUpdated:
		return policy.Academic.SendExamDateUpdated
	case models.EventResultAnnounced:
		return policy.Academic.SendResultAnnounced
	case models.EventResultUpdated:
		return policy.Academic.SendResultUpdated
	case models.EventLeaveApproved:
		return policy.Leave.SendLeaveApproved
	case models.EventLeaveRejected:
		return policy.Leave.SendLeaveRejected
	case models.EventTeacherAssigned:
		return policy.Assignment.SendTeacherAssigned
	case models.EventClassOrSectionChange:
		return policy.Assignment.SendClassOrSectionChange
	case models.EventFeeVoucherGenerated:
		return policy.Finance.SendFeeVoucherGenerated
	case models.EventFeePaymentReceived:
		return policy.Finance.SendFeePaymentReceived
	case models.EventSalarySlipGenerated:
		return policy.Finance.SendSalarySlipGenerated
	case models.EventAnnouncementPublished:
		return policy.System.SendAnnouncements
	case models.EventMaintenanceAlert:
		return policy.System.SendMaintenanceAlerts
	default:
		return true
	}
}
