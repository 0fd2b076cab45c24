package models

import "time"

// SubmissionRateLimit is one fixed-window counter row: one per client IP per
// window. A counter is "current" while its window_start is within the last
// window length; stale rows are simply left behind and ignored.
type SubmissionRateLimit struct {
	RateLimitID     int       `gorm:"primaryKey;column:rate_limit_id" json:"rate_limit_id"`
	IPAddress       string    `gorm:"column:ip_address;index" json:"ip_address"`
	SubmissionCount int       `gorm:"column:submission_count" json:"submission_count"`
	WindowStart     time.Time `gorm:"column:window_start" json:"window_start"`
}

func (SubmissionRateLimit) TableName() string {
	return "submission_rate_limits"
}
