package core

import (
	"fmt"
	"time"
)

// Date is a calendar date with no clock or zone component. It serializes
// as 2006-01-02.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateOfEpochDay converts days since 1970-01-01 back to a Date.
func DateOfEpochDay(days int64) Date {
	return DateOf(time.Unix(days*86400, 0).UTC())
}

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 {
	return d.Time().Unix() / 86400
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}
