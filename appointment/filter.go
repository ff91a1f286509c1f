package appointment

import (
	"sort"
	"strings"
	"time"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// FilterMode selects which slice of the calendar the appointment list shows.
type FilterMode string

const (
	FilterAll      FilterMode = "all"
	FilterToday    FilterMode = "today"
	FilterTomorrow FilterMode = "tomorrow"
	FilterWeek     FilterMode = "week"
	FilterCustom   FilterMode = "custom"
)

// ParseFilterMode maps a query value onto a FilterMode, defaulting to all.
func ParseFilterMode(s string) FilterMode {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case FilterToday:
		return FilterToday
	case FilterTomorrow:
		return FilterTomorrow
	case FilterWeek:
		return FilterWeek
	case FilterCustom:
		return FilterCustom
	}
	return FilterAll
}

// Filter keeps the appointments matching mode relative to now's local date.
// week is the inclusive range [today, today+7]. custom compares the stored
// date string against customDate verbatim.
func Filter(appointments []entity.Appointment, mode FilterMode, customDate string, now time.Time) []entity.Appointment {
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	weekEnd := now.AddDate(0, 0, 7).Format("2006-01-02")

	keep := func(a entity.Appointment) bool {
		switch mode {
		case FilterToday:
			return a.Date == today
		case FilterTomorrow:
			return a.Date == tomorrow
		case FilterWeek:
			// ISO dates compare correctly as strings
			return a.Date >= today && a.Date <= weekEnd
		case FilterCustom:
			return customDate != "" && a.Date == customDate
		}
		return true
	}

	out := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// Sort orders appointments by date ascending, ties broken by lexicographic
// comparison of the time-window text. The tie-break is intentionally not a
// parsed time: "10:00-11:00" sorts before "9:00-10:00". Windows share one
// format within the shops, so this stays good enough in practice.
func Sort(appointments []entity.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].TimeWindow < appointments[j].TimeWindow
	})
}
