package entities

import "time"

// TimestampLayout is the stored format of Registration.CreatedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// Status of a registration record.
type Status string

const (
	StatusRegistered Status = "Registered"
	StatusCancelled  Status = "Cancelled"
)

// Registration is one ledger record.
type Registration struct {
	Seq           int
	ParticipantID string
	DisplayName   string
	Power         string
	Slot          string
	CreatedAt     string // raw stored text, may be malformed
	Status        Status
	Note          string
}

func (r *Registration) IsActive() bool {
	return r.Status == StatusRegistered
}

// CreatedAtTime parses CreatedAt in loc.
func (r *Registration) CreatedAtTime(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, r.CreatedAt, loc)
}

// FormatTimestamp renders t the way CreatedAt is stored.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
