package entity

import (
	"context"
	"errors"
	"time"
)

// TokenTTL is the validity window of a download token. Expiry is derived at
// validation time from CreatedAt; it is never stored.
const TokenTTL = 7 * 24 * time.Hour

var ErrRecordNotFound = errors.New("lead record not found")

// LeadRecord is one spreadsheet row per submitted email. The store is
// positional; the column mapping lives in the storage layer.
type LeadRecord struct {
	Email          string     `json:"email"`
	CreatedAt      time.Time  `json:"created_at"`
	EmailSent      bool       `json:"email_sent"`
	DownloadCount  int        `json:"download_count"`
	LastDownloadAt *time.Time `json:"last_download_at,omitempty"`
	Source         string     `json:"source"`
	Token          string     `json:"token"`
}

// Expired reports whether the record's token is past the TTL at the given
// instant.
func (r *LeadRecord) Expired(now time.Time) bool {
	return now.Sub(r.CreatedAt) > TokenTTL
}

type LeadRepositoryInterface interface {
	Append(ctx context.Context, record *LeadRecord) error

	// FindByToken scans for the first row whose token column matches.
	// Returns ErrRecordNotFound on a miss.
	FindByToken(ctx context.Context, token string) (*LeadRecord, error)

	// IncrementDownloadCount bumps the download counter by one and stamps
	// the last-download time, returning the new count.
	IncrementDownloadCount(ctx context.Context, token string, at time.Time) (int, error)

	// MarkEmailSent flips the informational email-sent flag to "Yes".
	MarkEmailSent(ctx context.Context, token string) error
}
