// Package dashboard derives the pantry dashboard summary from a user's items.
//
// ComputeSummary is a pure function of (items, now): it performs no I/O,
// never mutates its input, and cannot fail. Dirty numeric fields degrade to
// zero and missing timestamps fall back to "now" instead of raising errors,
// so a partially-broken inventory still renders a dashboard. Callers must
// capture "now" once and pass the same value for the whole request; the
// location of that timestamp pins every day and week boundary.
package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"shelfwise/internal/domain"
)

// DayGlance is one entry of the Monday-to-Sunday heat strip. The short json
// names are the wire contract the frontend consumes.
type DayGlance struct {
	Day      string `json:"day"`
	Expiring int    `json:"exp"`
	Used     int    `json:"used"`
	Status   string `json:"status"`
}

// ExpiringItem is one row of the soonest-first expiry list.
type ExpiringItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Expiry   string `json:"expiry"`
	DaysLeft int    `json:"daysLeft"`
	Qty      string `json:"qty"`
}

// Summary is the full dashboard payload, recomputed on every request.
type Summary struct {
	TotalSpent          float64        `json:"totalSpent"`
	ItemCount           int            `json:"itemCount"`
	UpdatedAt           time.Time      `json:"updatedAt"`
	WeeklySavings       float64        `json:"weeklySavings"`
	WeeklySavingsChange string         `json:"weeklySavingsChange"`
	WeeklyLoss          float64        `json:"weeklyLoss"`
	WeeklyLossChange    string         `json:"weeklyLossChange"`
	WeekAtGlance        []DayGlance    `json:"weekAtGlance"`
	ExpiringItems       []ExpiringItem `json:"expiringItems"`
}

var weekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ComputeSummary aggregates items into the dashboard summary as of now.
// An empty item list yields an all-zero summary with seven green days.
func ComputeSummary(items []domain.Item, now time.Time) Summary {
	todayStart := startOfDay(now)
	in7DaysEnd := endOfDay(todayStart.AddDate(0, 0, 6))

	curWeekStart := weekStart(now)
	curWeekEnd := endOfDay(curWeekStart.AddDate(0, 0, 6))
	prevWeekStart := startOfDay(curWeekStart.AddDate(0, 0, -7))
	prevWeekEnd := endOfDay(curWeekEnd.AddDate(0, 0, -7))

	var dayStarts, dayEnds [7]time.Time
	for i := range dayStarts {
		dayStarts[i] = startOfDay(curWeekStart.AddDate(0, 0, i))
		dayEnds[i] = endOfDay(dayStarts[i])
	}

	var totalSpent, addedCur, addedPrev, lostCur, lostPrev float64
	var expCount, usedCount [7]int
	var expiring []domain.Item

	for _, it := range items {
		v := itemValue(it)
		totalSpent += v

		created := effectiveCreatedAt(it, now)
		switch {
		case within(created, curWeekStart, curWeekEnd):
			addedCur += v
		case within(created, prevWeekStart, prevWeekEnd):
			addedPrev += v
		}

		// An item is lost only once its expiry has actually passed "now",
		// bucketed into the week the expiry date falls in.
		expiry := it.ExpiryDate
		if !expiry.After(now) {
			switch {
			case within(expiry, curWeekStart, curWeekEnd):
				lostCur += v
			case within(expiry, prevWeekStart, prevWeekEnd):
				lostPrev += v
			}
		}

		// Heat strip counts expiries on their calendar day regardless of
		// whether they are already past.
		for i := range dayStarts {
			if within(expiry, dayStarts[i], dayEnds[i]) {
				expCount[i]++
				break
			}
		}
		if it.Used {
			changed := effectiveUpdatedAt(it, now)
			for i := range dayStarts {
				if within(changed, dayStarts[i], dayEnds[i]) {
					usedCount[i]++
					break
				}
			}
		}

		if within(expiry, todayStart, in7DaysEnd) {
			expiring = append(expiring, it)
		}
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].ExpiryDate.Before(expiring[j].ExpiryDate)
	})
	if len(expiring) > 5 {
		expiring = expiring[:5]
	}

	expiringRows := make([]ExpiringItem, 0, len(expiring))
	for _, it := range expiring {
		expiringRows = append(expiringRows, ExpiringItem{
			ID:       it.ID,
			Name:     it.Name,
			Expiry:   formatYMD(it.ExpiryDate),
			DaysLeft: daysLeft(it.ExpiryDate, todayStart),
			Qty:      qtyLabel(it.Quantity),
		})
	}

	glance := make([]DayGlance, 7)
	for i := range glance {
		status := "green"
		switch {
		case expCount[i] >= 2:
			status = "red"
		case expCount[i] == 1:
			status = "yellow"
		}
		glance[i] = DayGlance{
			Day:      weekDays[i],
			Expiring: expCount[i],
			Used:     usedCount[i],
			Status:   status,
		}
	}

	return Summary{
		TotalSpent:          totalSpent,
		ItemCount:           len(items),
		UpdatedAt:           now,
		WeeklySavings:       addedCur - lostCur,
		WeeklySavingsChange: pct(addedCur-lostCur, addedPrev-lostPrev),
		WeeklyLoss:          lostCur,
		WeeklyLossChange:    pct(lostCur, lostPrev),
		WeekAtGlance:        glance,
		ExpiringItems:       expiringRows,
	}
}

// itemValue is the monetary value of one item. Negative, NaN, or infinite
// numerics are dirty data and count as zero.
func itemValue(it domain.Item) float64 {
	q := it.Quantity
	if q < 0 {
		q = 0
	}
	p := it.PricePerUnit
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		p = 0
	}
	return float64(q) * p
}

// effectiveCreatedAt falls back through importedAt to now for records that
// predate either timestamp.
func effectiveCreatedAt(it domain.Item, now time.Time) time.Time {
	if !it.CreatedAt.IsZero() {
		return it.CreatedAt
	}
	if !it.ImportedAt.IsZero() {
		return it.ImportedAt
	}
	return now
}

func effectiveUpdatedAt(it domain.Item, now time.Time) time.Time {
	if !it.UpdatedAt.IsZero() {
		return it.UpdatedAt
	}
	if !it.CreatedAt.IsZero() {
		return it.CreatedAt
	}
	return now
}

// pct formats the change from previous to current as a signed percentage with
// one decimal. Both zero means no movement ("0.0%"); only previous zero is
// reported as "100.0%". The formula is applied verbatim even when previous is
// negative, matching the established wire behavior.
func pct(current, previous float64) string {
	if current == 0 && previous == 0 {
		return "0.0%"
	}
	if previous == 0 {
		return "100.0%"
	}
	return fmt.Sprintf("%.1f%%", (current-previous)/previous*100)
}

// daysLeft counts days from the start of today to expiry, rounding up and
// clamping at zero for expiries at or before the start of today.
func daysLeft(expiry, todayStart time.Time) int {
	d := int(math.Ceil(expiry.Sub(todayStart).Hours() / 24))
	if d < 0 {
		d = 0
	}
	return d
}

// qtyLabel pluralizes only for quantities strictly greater than one;
// zero and missing quantities render as a single unit.
func qtyLabel(quantity int) string {
	if quantity > 1 {
		return strconv.Itoa(quantity) + " units"
	}
	return "1 unit"
}
