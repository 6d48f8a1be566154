package roomevent

import (
	"fmt"
	"time"

	"cinema-scheduler/internal/pkg/errs"
)

const DayLayout = "2006-01-02"

var ErrInvalidTimeRange = errs.New("time range must start before it ends")

// TimeRange is [From, To). From < To is a caller precondition; use
// NewTimeRange when the bounds come from untrusted input.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func NewTimeRange(from, to time.Time) (TimeRange, error) {
	if !from.Before(to) {
		return TimeRange{}, errs.Wrapf(ErrInvalidTimeRange, "from=%s to=%s", from.Format(time.RFC3339), to.Format(time.RFC3339))
	}
	return TimeRange{From: from, To: to}, nil
}

func (tr TimeRange) Duration() time.Duration {
	return tr.To.Sub(tr.From)
}

// OverlapsWith reports whether either bound of candidate lies strictly inside tr.
// Touching bounds are not an overlap.
func (tr TimeRange) OverlapsWith(candidate TimeRange) bool {
	return strictlyInside(candidate.From, tr) || strictlyInside(candidate.To, tr)
}

// In expresses both bounds in loc. The instants do not change.
func (tr TimeRange) In(loc *time.Location) TimeRange {
	return TimeRange{From: tr.From.In(loc), To: tr.To.In(loc)}
}

func (tr TimeRange) String() string {
	return fmt.Sprintf("[%s,%s)", tr.From.Format(time.RFC3339), tr.To.Format(time.RFC3339))
}

func strictlyInside(t time.Time, tr TimeRange) bool {
	return t.After(tr.From) && t.Before(tr.To)
}

// Day is a calendar date in the location of the instant it was taken from.
type Day struct {
	year  int
	month time.Month
	day   int
}

func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, errs.Wrapf(err, "invalid day %q", s)
	}
	return DayOf(t), nil
}

func (d Day) Year() int         { return d.year }
func (d Day) Month() time.Month { return d.month }
func (d Day) DayOfMonth() int   { return d.day }
func (d Day) String() string    { return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day) }
func (d Day) IsZero() bool      { return d == Day{} }
func (d Day) AddDays(n int) Day { return DayOf(time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC)) }

// TimeOfDay is the offset from midnight of the instant's own day.
type TimeOfDay time.Duration

func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond()))
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ParseTimeOfDay accepts "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.Wrapf(err, "invalid time of day %q", s)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t > other }

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}
