package models

// AuthenticationPolicy toggles notifications for account security events.
type AuthenticationPolicy struct {
	SendLoginAlert           bool `json:"send_login_alert"`
	SendNewAccountCreation   bool `json:"send_new_account_creation"`
	SendPasswordResetRequest bool `json:"send_password_reset_request"`
}

// AcademicPolicy toggles notifications for exam and result events.
type AcademicPolicy struct {
	SendExamSchedulePublished bool `json:"send_exam_schedule_published"`
	SendExamDateUpdated       bool `json:"send_exam_date_updated"`
	SendResultAnnounced       bool `json:"send_result_announced"`
	SendResultUpdated         bool `json:"send_result_updated"`
}

// LeavePolicy toggles notifications for leave decisions.
type LeavePolicy struct {
	SendLeaveApproved bool `json:"send_leave_approved"`
	SendLeaveRejected bool `json:"send_leave_rejected"`
}

// AssignmentPolicy toggles notifications for staffing and section changes.
type AssignmentPolicy struct {
	SendTeacherAssigned      bool `json:"send_teacher_assigned"`
	SendClassOrSectionChange bool `json:"send_class_or_section_change"`
}

// FinancePolicy toggles notifications for fee and payroll events.
type FinancePolicy struct {
	SendFeeVoucherGenerated bool `json:"send_fee_voucher_generated"`
	SendFeePaymentReceived  bool `json:"send_fee_payment_received"`
	SendSalarySlipGenerated bool `json:"send_salary_slip_generated"`
}

// SystemPolicy toggles announcement and maintenance notifications.
type SystemPolicy struct {
	SendAnnouncements     bool `json:"send_announcements"`
	SendMaintenanceAlerts bool `json:"send_maintenance_alerts"`
}

// NotificationPolicy is the full enablement configuration: a master
// switch plus one flag per event kind, grouped by family. It is owned
// by the settings collaborator and read here at dispatch time only.
type NotificationPolicy struct {
	EnableNotifications bool                 `json:"enable_notifications"`
	Authentication      AuthenticationPolicy `json:"authentication"`
	Academic            AcademicPolicy       `json:"academic"`
	Leave               LeavePolicy          `json:"leave"`
	Assignment          AssignmentPolicy     `json:"assignment"`
	Finance             FinancePolicy        `json:"finance"`
	System              SystemPolicy         `json:"system"`
}

// DefaultPolicy returns a policy with every notification enabled.
func DefaultPolicy() NotificationPolicy {
	return NotificationPolicy{
		EnableNotifications: true,
		Authentication: AuthenticationPolicy{
			SendLoginAlert:           true,
			SendNewAccountCreation:   true,
			SendPasswordResetRequest: true,
		},
		Academic: AcademicPolicy{
			SendExamSchedulePublished: true,
			SendExamDateUpdated:       true,
			SendResultAnnounced:       true,
			SendResultUpdated:         true,
		},
		Leave: LeavePolicy{
			SendLeaveApproved: true,
			SendLeaveRejected: true,
		},
		Assignment: AssignmentPolicy{
			SendTeacherAssigned:      true,
			SendClassOrSectionChange: true,
		},
		Finance: FinancePolicy{
			SendFeeVoucherGenerated: true,
			SendFeePaymentReceived:  true,
			SendSalarySlipGenerated: true,
		},
		System: SystemPolicy{
			SendAnnouncements:     true,
			SendMaintenanceAlerts: true,
		},
	}
}
