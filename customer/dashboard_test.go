package customer

import (
	"testing"
	"time"

	"github.com/elitephnrepair2-cpu/crm-app/entity"
)

func cust(name, phone string, created time.Time) entity.Customer {
	return entity.Customer{Name: name, Phone: phone, CreatedAt: created}
}

func TestFilterByDigits(t *testing.T) {
	now := time.Now()
	list := []entity.Customer{
		cust("Jane Doe", "(409) 123-4567", now),
		cust("John Smith", "713-555-0199", now),
		cust("No Phone", "", now),
	}

	cases := []struct {
		term string
		want []string
	}{
		{"4091234567", []string{"Jane Doe"}},
		{"409-123", []string{"Jane Doe"}},
		{"555", []string{"John Smith"}},
		{"jane", []string{"Jane Doe"}},
		{"  JANE ", []string{"Jane Doe"}},
		{"smith", []string{"John Smith"}},
		{"0199", []string{"John Smith"}},
		{"zzz", []string{}},
	}

	for _, tt := range cases {
		got := Filter(list, tt.term, "")
		if len(got) != len(tt.want) {
			t.Fatalf("Filter(%q): got %d results, want %d", tt.term, len(got), len(tt.want))
		}
		for i, c := range got {
			if c.Name != tt.want[i] {
				t.Fatalf("Filter(%q)[%d] = %q, want %q", tt.term, i, c.Name, tt.want[i])
			}
		}
	}
}

func TestFilterByDate(t *testing.T) {
	day := time.Date(2026, 3, 14, 10, 30, 0, 0, time.Local)
	list := []entity.Customer{
		cust("On Day", "111", day),
		cust("Other Day", "222", day.AddDate(0, 0, -3)),
		cust("Never", "333", time.Time{}),
	}

	got := Filter(list, "", "2026-03-14")
	if len(got) != 1 || got[0].Name != "On Day" {
		t.Fatalf("date filter kept %v, want only On Day", got)
	}
}

func TestGroupIsPartition(t *testing.T) {
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.Local)
	list := []entity.Customer{
		cust("A", "1", now),
		cust("B", "2", now.Add(-2*time.Hour)),
		cust("C", "3", now.AddDate(0, 0, -1)),
		cust("D", "4", now.AddDate(0, 0, -5)),
		cust("E", "5", time.Time{}),
	}

	d := Group(list, "", now)
	total := len(d.Today) + len(d.Yesterday) + len(d.Older)
	if total != len(list) {
		t.Fatalf("grouping lost or duplicated rows: %d grouped, %d in", total, len(list))
	}
	if len(d.Today) != 2 || len(d.Yesterday) != 1 || len(d.Older) != 2 {
		t.Fatalf("unexpected buckets: today=%d yesterday=%d older=%d",
			len(d.Today), len(d.Yesterday), len(d.Older))
	}
	// missing created_at goes to older
	found := false
	for _, c := range d.Older {
		if c.Name == "E" {
			found = true
		}
	}
	if !found {
		t.Fatal("customer with missing created_at should land in older")
	}
}

func TestGroupWithDateFilterUsesOlderOnly(t *testing.T) {
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, time.Local)
	list := []entity.Customer{cust("A", "1", now), cust("B", "2", now)}

	d := Group(list, "2026-06-10", now)
	if len(d.Today) != 0 || len(d.Yesterday) != 0 || len(d.Older) != 2 {
		t.Fatalf("date-filtered grouping should put everything in older, got today=%d yesterday=%d older=%d",
			len(d.Today), len(d.Yesterday), len(d.Older))
	}
}

func TestBuildDashboardExpansion(t *testing.T) {
	cases := []struct {
		search, date string
		want         bool
	}{
		{"", "", false},
		{"jane", "", true},
		{"   ", "", false},
		{"", "2026-01-01", true},
	}
	for _, tt := range cases {
		d := BuildDashboard(nil, tt.search, tt.date, time.Now())
		if d.OlderExpanded != tt.want {
			t.Fatalf("BuildDashboard(search=%q date=%q).OlderExpanded = %v, want %v",
				tt.search, tt.date, d.OlderExpanded, tt.want)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	now := time.Now()
	list := []entity.Customer{
		cust("Ann Lee", "100", now),
		cust("Bea Lee", "200", now),
		cust("Cal Lee", "300", now),
	}
	got := Filter(list, "lee", "")
	if len(got) != 3 {
		t.Fatalf("want all 3 matches, got %d", len(got))
	}
	for i, want := range []string{"Ann Lee", "Bea Lee", "Cal Lee"} {
		if got[i].Name != want {
			t.Fatalf("order not preserved: got[%d]=%q want %q", i, got[i].Name, want)
		}
	}
}
