package services

import (
	"errors"
	"net"
	"strings"
	"time"

	"scholarship-portal-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	// RateLimitWindow is the fixed window length for submission counting.
	RateLimitWindow = 60 * time.Minute

	// MaxSubmissionsPerWindow is the per-IP admission threshold.
	MaxSubmissionsPerWindow = 3
)

// RateLimitResult is the outcome of one admission check. Current carries the
// counter row found for the window (nil when none exists) so the same row
// can be incremented once the submission succeeds.
type RateLimitResult struct {
	Allowed           bool
	RetryAfterMinutes int
	Current           *models.SubmissionRateLimit
}

// RateLimitService admits or rejects submission attempts per client IP using
// a fixed-window counter row in the database.
//
// This is a fixed window, not sliding-window or token-bucket: a client can
// submit 3 times at the end of one window and 3 more right after it rolls
// over. The check in Check and the write in Record are also not atomic, so
// two concurrent submissions from one IP can both be admitted just under the
// threshold. Both are accepted limitations of the intake flow.
type RateLimitService struct {
	db *gorm.DB
}

func NewRateLimitService(db *gorm.DB) *RateLimitService {
	return &RateLimitService{db: db}
}

// Check looks up the counter row for ip whose window started within the last
// RateLimitWindow and decides admission. It never writes.
func (s *RateLimitService) Check(ip string) (*RateLimitResult, error) {
	windowStart := time.Now().Add(-RateLimitWindow)

	var row models.SubmissionRateLimit
	err := s.db.Where("ip_address = ? AND window_start >= ?", ip, windowStart).
		Order("window_start DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RateLimitResult{Allowed: true}, nil
		}
		return nil, err
	}

	if row.SubmissionCount >= MaxSubmissionsPerWindow {
		return &RateLimitResult{
			Allowed:           false,
			RetryAfterMinutes: int(RateLimitWindow / time.Minute),
			Current:           &row,
		}, nil
	}

	return &RateLimitResult{Allowed: true, Current: &row}, nil
}

// Record counts one admitted submission: it increments the window row found
// by Check, or opens a new window when none existed. Called only after the
// application record was written successfully.
func (s *RateLimitService) Record(current *models.SubmissionRateLimit, ip string) error {
	if current != nil {
		return s.db.Model(&models.SubmissionRateLimit{}).
			Where("rate_limit_id = ?", current.RateLimitID).
			Update("submission_count", current.SubmissionCount+1).Error
	}

	row := models.SubmissionRateLimit{
		IPAddress:       ip,
		SubmissionCount: 1,
		WindowStart:     time.Now(),
	}
	return s.db.Create(&row).Error
}

// ClientIdentifier derives the rate-limit key for a request: the first
// forwarded-for address, then the real-IP header, then "unknown". Clients
// behind proxies that strip both headers share the "unknown" bucket.
func ClientIdentifier(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first := fwd
		if idx := strings.Index(fwd, ","); idx >= 0 {
			first = fwd[:idx]
		}
		if trimmed := strings.TrimSpace(first); trimmed != "" {
			return trimmed
		}
	}

	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}

	if c.Request.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil && host != "" {
			return host
		}
		return c.Request.RemoteAddr
	}

	return "unknown"
}
