package db

import (
	"context"
	"fmt"

	"github.com/noshahi-devs/notification-service/internal/models"
)

// masterSettingKey is the row controlling the whole notification system.
const masterSettingKey = "EnableNotifications"

// GetNotificationPolicy assembles the enablement policy from the
// notification_settings table. Keys absent from the table keep their
// default (enabled) value, so a fresh install notifies for everything.
// The settings rows themselves are owned and mutated by the admin
// settings surface, not by this service.
func (d *DB) GetNotificationPolicy(ctx context.Context) (models.NotificationPolicy, error) {
	policy := models.DefaultPolicy()

	rows, err := d.Pool.Query(ctx, `SELECT setting_key, is_enabled FROM notification_settings`)
	if err != nil {
		return policy, fmt.Errorf("failed to load notification settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var enabled bool
		if err := rows.Scan(&key, &enabled); err != nil {
			return policy, fmt.Errorf("failed to scan notification setting: %w", err)
		}
		applySetting(&policy, key, enabled)
	}
	return policy, rows.Err()
}

func applySetting(policy *models.NotificationPolicy, key string, enabled bool) {
	flags := map[string]*bool{
		masterSettingKey:            &policy.EnableNotifications,
		"SendLoginAlert":            &policy.Authentication.SendLoginAlert,
		"SendNewAccountCreation":    &policy.Authentication.SendNewAccountCreation,
		"SendPasswordResetRequest":  &policy.Authentication.SendPasswordResetRequest,
		"SendExamSchedulePublished": &policy.Academic.SendExamSchedulePublished,
		"SendExamDateUpdated":       &policy.Academic.SendExamDateUpdated,
		"SendResultAnnounced":       &policy.Academic.SendResultAnnounced,
		"SendResultUpdated":         &policy.Academic.SendResultUpdated,
		"SendLeaveApproved":         &policy.Leave.SendLeaveApproved,
		"SendLeaveRejected":         &policy.Leave.SendLeaveRejected,
		"SendTeacherAssigned":       &policy.Assignment.SendTeacherAssigned,
		"SendClassOrSectionChange":  &policy.Assignment.SendClassOrSectionChange,
		"SendFeeVoucherGenerated":   &policy.Finance.SendFeeVoucherGenerated,
		"SendFeePaymentReceived":    &policy.Finance.SendFeePaymentReceived,
		"SendSalarySlipGenerated":   &policy.Finance.SendSalarySlipGenerated,
		"SendAnnouncements":         &policy.System.SendAnnouncements,
		"SendMaintenanceAlerts":     &policy.System.SendMaintenanceAlerts,
	}
	if flag, ok := flags[key]; ok {
		*flag = enabled
	}
}
