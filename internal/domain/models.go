package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateOnlyLayout is the wire and storage format for expense dates.
const DateOnlyLayout = "2006-01-02"

// DateOnly is a calendar date without a time component. It marshals to
// "YYYY-MM-DD" in JSON and maps to a SQL DATE column.
type DateOnly struct {
	time.Time
}

// NewDateOnly truncates t to its calendar date in UTC.
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDateOnly parses a "YYYY-MM-DD" string.
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(DateOnlyLayout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOnly{Time: t}, nil
}

func (d DateOnly) String() string {
	return d.Format(DateOnlyLayout)
}

// MarshalJSON implements json.Marshaler
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateOnlyLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected a YYYY-MM-DD string", s)
	}
	parsed, err := ParseDateOnly(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d DateOnly) Value() (driver.Value, error) {
	return d.Format(DateOnlyLayout), nil
}

// Scan implements sql.Scanner, accepting the representations the postgres and
// sqlite drivers hand back for DATE columns.
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = NewDateOnly(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = DateOnly{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

func (d *DateOnly) scanString(s string) error {
	// Some drivers return the full timestamp form for DATE columns
	if len(s) > len(DateOnlyLayout) {
		s = s[:len(DateOnlyLayout)]
	}
	parsed, err := ParseDateOnly(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType tells GORM to migrate DateOnly fields as DATE columns
func (DateOnly) GormDataType() string {
	return "date"
}

// Expense is the sole persisted entity: a single spending record. The id is
// server-assigned and immutable once created.
type Expense struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Amount    float64   `gorm:"not null"`
	Category  string    `gorm:"type:varchar(100);not null"`
	Date      DateOnly  `gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// SuggestedCategories are the client-suggested expense categories. The server
// does not enforce them; any non-empty category is accepted.
var SuggestedCategories = []string{"Food", "Transport", "Utilities"}
