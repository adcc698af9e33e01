package models

import "time"

const SettingPlatformFeePercentage = "platform_fee_percentage"

type GlobalSetting struct {
	Key         string    `db:"setting_key"`
	Value       string    `db:"setting_value"`
	Description string    `db:"description"`
	UpdatedAt   time.Time `db:"updated_at"`
}
