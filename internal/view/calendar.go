package view

import (
	"sort"
	"time"

	"leavedesk/internal/upstream"
)

// CalendarDay groups holidays and leave spans that start on one date.
type CalendarDay struct {
	Date     string                  `json:"date"`
	Holidays []upstream.Holiday      `json:"holidays"`
	OnLeave  []upstream.LeaveRequest `json:"onLeave"`
}

// MergeCalendar folds leave history and holidays into days, ascending
// by date. Both the employee and the manager calendar render from this.
func MergeCalendar(history []upstream.LeaveRequest, holidays []upstream.Holiday) []CalendarDay {
	byDate := map[string]*CalendarDay{}
	day := func(date string) *CalendarDay {
		d, ok := byDate[date]
		if !ok {
			d = &CalendarDay{Date: date}
			byDate[date] = d
		}
		return d
	}

	for _, h := range holidays {
		d := day(h.Date)
		d.Holidays = append(d.Holidays, h)
	}
	for _, r := range history {
		d := day(r.From)
		d.OnLeave = append(d.OnLeave, r)
	}

	days := make([]CalendarDay, 0, len(byDate))
	for _, d := range byDate {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// NextHoliday picks the holiday closest to now, today included, and
// the whole days until it. ok is false when nothing upcoming remains.
// Unparseable dates are skipped rather than failing the page.
func NextHoliday(holidays []upstream.Holiday, now time.Time) (upstream.Holiday, int, bool) {
	today := now.UTC().Truncate(24 * time.Hour)

	var (
		best  upstream.Holiday
		until int
		found bool
	)
	for _, h := range holidays {
		d, err := time.Parse("2006-01-02", h.Date)
		if err != nil || d.Before(today) {
			continue
		}
		days := int(d.Sub(today).Hours() / 24)
		if !found || days < until {
			best, until, found = h, days, true
		}
	}
	return best, until, found
}
