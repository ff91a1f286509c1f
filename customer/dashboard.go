package customer

import (
	"strings"
	"time"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

// Dashboard is the grouped customer list the dashboard renders. Bucket order
// is the fetch order (newest first); no secondary sort is applied here.
type Dashboard struct {
	Today     []entity.Customer `json:"today"`
	Yesterday []entity.Customer `json:"yesterday"`
	// Older holds everything else. When a date filter is active every match
	// lands here and the view relabels the bucket as results for that date.
	Older []entity.Customer `json:"older"`
	// OlderExpanded tells the view to open the collapsed bucket; it flips on
	// whenever a search term or date filter is in play.
	OlderExpanded bool `json:"older_expanded"`
}

// Filter applies the date filter then the free-text search, preserving order.
//
// The date filter keeps customers whose created_at date portion equals
// filterDate (ISO "YYYY-MM-DD"). The text search matches the trimmed,
// lowercased term against the name, or, when the term contains a digit, the
// digits-only term against the digits-only phone. Missing fields behave as
// empty strings and simply fail to match.
func Filter(customers []entity.Customer, search, filterDate string) []entity.Customer {
	result := customers

	if filterDate != "" {
		kept := make([]entity.Customer, 0, len(result))
		for _, c := range result {
			if c.CreatedAt.IsZero() {
				continue
			}
			if strings.HasPrefix(c.CreatedAt.Format(time.RFC3339), filterDate) {
				kept = append(kept, c)
			}
		}
		result = kept
	}

	raw := strings.TrimSpace(search)
	if raw == "" {
		return result
	}
	term := strings.ToLower(raw)
	termDigits := digitsOnly(raw)

	kept := make([]entity.Customer, 0, len(result))
	for _, c := range result {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		nameMatch := strings.Contains(name, term)
		phoneMatch := termDigits != "" && strings.Contains(digitsOnly(c.Phone), termDigits)
		if nameMatch || phoneMatch {
			kept = append(kept, c)
		}
	}
	return kept
}

// Group buckets the already-filtered list into today/yesterday/older relative
// to now's local date. With an active date filter everything goes to Older.
func Group(filtered []entity.Customer, filterDate string, now time.Time) *Dashboard {
	d := &Dashboard{
		Today:     []entity.Customer{},
		Yesterday: []entity.Customer{},
		Older:     []entity.Customer{},
	}

	if filterDate != "" {
		d.Older = append(d.Older, filtered...)
		return d
	}

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	for _, c := range filtered {
		if c.CreatedAt.IsZero() {
			d.Older = append(d.Older, c)
			continue
		}
		switch c.CreatedAt.Format("2006-01-02") {
		case today:
			d.Today = append(d.Today, c)
		case yesterday:
			d.Yesterday = append(d.Yesterday, c)
		default:
			d.Older = append(d.Older, c)
		}
	}
	return d
}

// BuildDashboard runs Filter then Group and sets the expansion flag.
func BuildDashboard(customers []entity.Customer, search, filterDate string, now time.Time) *Dashboard {
	d := Group(Filter(customers, search, filterDate), filterDate, now)
	d.OlderExpanded = strings.TrimSpace(search) != "" || filterDate != ""
	return d
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
