package ledger

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a civil date in UTC with no time component. It marshals as
// "2006-01-02", the format the ledger document stores dates in.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return Date{t: t}, nil
}

// DateOf truncates t to its civil date in UTC.
func DateOf(t time.Time) Date {
	year, month, day := t.UTC().Date()

	return NewDate(year, month, day)
}

func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

func (d Date) FirstOfMonth() Date {
	year, month, _ := d.t.Date()

	return NewDate(year, month, 1)
}

// DaysUntil returns the whole-day difference between d and other.
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24) //nolint:gomnd
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("date %s: %w", data, ErrMalformedDate)
	}

	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
