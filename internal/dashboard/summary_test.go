package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfwise/internal/domain"
)

// Wednesday afternoon; the surrounding week runs Mon Mar 17 to Sun Mar 23.
var wednesday = time.Date(2025, time.March, 19, 15, 0, 0, 0, time.UTC)

func march(day, hour int) time.Time {
	return time.Date(2025, time.March, day, hour, 0, 0, 0, time.UTC)
}

func TestComputeSummaryEmpty(t *testing.T) {
	s := ComputeSummary(nil, wednesday)

	assert.Zero(t, s.TotalSpent)
	assert.Zero(t, s.ItemCount)
	assert.Equal(t, wednesday, s.UpdatedAt)
	assert.Zero(t, s.WeeklySavings)
	assert.Equal(t, "0.0%", s.WeeklySavingsChange)
	assert.Zero(t, s.WeeklyLoss)
	assert.Equal(t, "0.0%", s.WeeklyLossChange)
	assert.Empty(t, s.ExpiringItems)
	assert.NotNil(t, s.ExpiringItems)

	require.Len(t, s.WeekAtGlance, 7)
	for _, d := range s.WeekAtGlance {
		assert.Equal(t, "green", d.Status)
		assert.Zero(t, d.Expiring)
		assert.Zero(t, d.Used)
	}
}

func TestComputeSummaryWeekOrder(t *testing.T) {
	s := ComputeSummary(nil, wednesday)
	want := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	require.Len(t, s.WeekAtGlance, 7)
	for i, d := range s.WeekAtGlance {
		assert.Equal(t, want[i], d.Day)
	}
}

func TestComputeSummaryTotalSpent(t *testing.T) {
	items := []domain.Item{
		{Name: "Milk", Quantity: 3, PricePerUnit: 10},
		{Name: "Eggs", Quantity: 2, PricePerUnit: 0.5},
		{Name: "Dirty qty", Quantity: -4, PricePerUnit: 9},
		{Name: "Dirty price", Quantity: 2, PricePerUnit: -1},
	}

	s := ComputeSummary(items, wednesday)
	assert.InDelta(t, 31.0, s.TotalSpent, 1e-9)
	assert.Equal(t, 4, s.ItemCount)
}

func TestComputeSummaryExpiringItem(t *testing.T) {
	items := []domain.Item{{
		ID:           "it-1",
		Name:         "Yogurt",
		Quantity:     3,
		PricePerUnit: 10,
		ExpiryDate:   march(21, 0), // today + 2 days
		CreatedAt:    march(18, 9),
	}}

	s := ComputeSummary(items, wednesday)

	assert.InDelta(t, 30.0, s.TotalSpent, 1e-9)
	require.Len(t, s.ExpiringItems, 1)
	row := s.ExpiringItems[0]
	assert.Equal(t, "it-1", row.ID)
	assert.Equal(t, "Yogurt", row.Name)
	assert.Equal(t, "2025-03-21", row.Expiry)
	assert.Equal(t, 2, row.DaysLeft)
	assert.Equal(t, "3 units", row.Qty)
}

func TestComputeSummaryQtyLabels(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Name: "One", Quantity: 1, ExpiryDate: march(19, 18)},
		{ID: "b", Name: "Zero", Quantity: 0, ExpiryDate: march(20, 0)},
		{ID: "c", Name: "Many", Quantity: 12, ExpiryDate: march(21, 0)},
	}

	s := ComputeSummary(items, wednesday)
	require.Len(t, s.ExpiringItems, 3)
	assert.Equal(t, "1 unit", s.ExpiringItems[0].Qty)
	assert.Equal(t, "1 unit", s.ExpiringItems[1].Qty)
	assert.Equal(t, "12 units", s.ExpiringItems[2].Qty)
}

func TestComputeSummaryExpiringSortedAndCapped(t *testing.T) {
	var items []domain.Item
	for d := 25; d >= 19; d-- { // seven items, inserted latest-first
		items = append(items, domain.Item{
			ID:         string(rune('a' + d - 19)),
			Name:       "Item",
			Quantity:   1,
			ExpiryDate: march(d, 12),
		})
	}

	s := ComputeSummary(items, wednesday)
	require.Len(t, s.ExpiringItems, 5)
	for i := 1; i < len(s.ExpiringItems); i++ {
		assert.LessOrEqual(t, s.ExpiringItems[i-1].Expiry, s.ExpiringItems[i].Expiry)
	}
	for _, row := range s.ExpiringItems {
		assert.GreaterOrEqual(t, row.DaysLeft, 0)
	}
	assert.Equal(t, "2025-03-19", s.ExpiringItems[0].Expiry)
	assert.Equal(t, "2025-03-23", s.ExpiringItems[4].Expiry)
}

func TestComputeSummaryTwoExpiringTodayIsRed(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Name: "Ham", Quantity: 1, ExpiryDate: march(19, 8)},
		{ID: "b", Name: "Brie", Quantity: 1, ExpiryDate: march(19, 22)},
	}

	s := ComputeSummary(items, wednesday)
	require.Len(t, s.WeekAtGlance, 7)
	wed := s.WeekAtGlance[2]
	assert.Equal(t, "Wed", wed.Day)
	assert.Equal(t, 2, wed.Expiring)
	assert.Equal(t, "red", wed.Status)
}

func TestComputeSummarySingleExpiryIsYellow(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Name: "Cod", Quantity: 1, ExpiryDate: march(21, 10)},
	}

	s := ComputeSummary(items, wednesday)
	fri := s.WeekAtGlance[4]
	assert.Equal(t, "Fri", fri.Day)
	assert.Equal(t, 1, fri.Expiring)
	assert.Equal(t, "yellow", fri.Status)
}

// An expiry earlier in the current week counts against this week's loss, not
// last week's, because bucket membership follows the week the expiry date
// falls in once it is past "now".
func TestComputeSummaryYesterdayLossInCurrentWeek(t *testing.T) {
	items := []domain.Item{{
		ID:           "a",
		Name:         "Salad",
		Quantity:     2,
		PricePerUnit: 3,
		ExpiryDate:   march(18, 10), // yesterday
		CreatedAt:    march(3, 10),  // added well before either window
	}}

	s := ComputeSummary(items, wednesday)
	assert.InDelta(t, 6.0, s.WeeklyLoss, 1e-9)
	assert.Equal(t, "100.0%", s.WeeklyLossChange)
}

// A future expiry date is not a loss yet, even though it falls inside the
// current week window.
func TestComputeSummaryFutureExpiryNotLost(t *testing.T) {
	items := []domain.Item{{
		ID:           "a",
		Name:         "Chicken",
		Quantity:     1,
		PricePerUnit: 8,
		ExpiryDate:   march(22, 10), // Saturday, after now
		CreatedAt:    march(3, 10),
	}}

	s := ComputeSummary(items, wednesday)
	assert.Zero(t, s.WeeklyLoss)
}

func TestComputeSummaryWeeklySavings(t *testing.T) {
	items := []domain.Item{
		// Added this week: +20
		{ID: "a", Quantity: 2, PricePerUnit: 10, CreatedAt: march(17, 9), ExpiryDate: march(28, 0)},
		// Lost this week: -6 (expired yesterday)
		{ID: "b", Quantity: 2, PricePerUnit: 3, CreatedAt: march(3, 9), ExpiryDate: march(18, 10)},
		// Added previous week: 5
		{ID: "c", Quantity: 1, PricePerUnit: 5, CreatedAt: march(12, 9), ExpiryDate: march(28, 0)},
		// Lost previous week: 4
		{ID: "d", Quantity: 1, PricePerUnit: 4, CreatedAt: march(1, 9), ExpiryDate: march(14, 10)},
	}

	s := ComputeSummary(items, wednesday)

	assert.InDelta(t, 14.0, s.WeeklySavings, 1e-9) // 20 - 6
	// previous week net = 5 - 4 = 1; (14-1)/1*100 = 1300.0%
	assert.Equal(t, "1300.0%", s.WeeklySavingsChange)
	assert.InDelta(t, 6.0, s.WeeklyLoss, 1e-9)
	// (6-4)/4*100 = 50.0%
	assert.Equal(t, "50.0%", s.WeeklyLossChange)
}

func TestComputeSummaryCreatedAtFallbacks(t *testing.T) {
	items := []domain.Item{
		// No createdAt; importedAt inside the current week.
		{ID: "a", Quantity: 1, PricePerUnit: 7, ImportedAt: march(18, 8), ExpiryDate: march(30, 0)},
		// Neither timestamp: treated as entering inventory "now".
		{ID: "b", Quantity: 1, PricePerUnit: 2, ExpiryDate: march(30, 0)},
	}

	s := ComputeSummary(items, wednesday)
	assert.InDelta(t, 9.0, s.WeeklySavings, 1e-9)
}

func TestComputeSummaryUsedCount(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Used: true, UpdatedAt: march(20, 13), ExpiryDate: march(30, 0)},
		{ID: "b", Used: true, CreatedAt: march(20, 9), ExpiryDate: march(30, 0)}, // updatedAt falls back to createdAt
		{ID: "c", Used: false, UpdatedAt: march(20, 13), ExpiryDate: march(30, 0)},
	}

	s := ComputeSummary(items, wednesday)
	thu := s.WeekAtGlance[3]
	assert.Equal(t, "Thu", thu.Day)
	assert.Equal(t, 2, thu.Used)
}

func TestComputeSummarySundayBelongsToCurrentWeek(t *testing.T) {
	sunday := time.Date(2025, time.March, 23, 11, 0, 0, 0, time.UTC)
	items := []domain.Item{
		{ID: "a", Quantity: 1, ExpiryDate: march(17, 10)}, // Monday of the same week
	}

	s := ComputeSummary(items, sunday)
	mon := s.WeekAtGlance[0]
	assert.Equal(t, "Mon", mon.Day)
	assert.Equal(t, 1, mon.Expiring)
}

func TestComputeSummaryZeroExpiryExcluded(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Quantity: 2, PricePerUnit: 5, CreatedAt: march(18, 9)}, // no expiry date at all
	}

	s := ComputeSummary(items, wednesday)
	assert.InDelta(t, 10.0, s.TotalSpent, 1e-9)
	assert.Empty(t, s.ExpiringItems)
	assert.Zero(t, s.WeeklyLoss)
	for _, d := range s.WeekAtGlance {
		assert.Zero(t, d.Expiring)
	}
}

func TestComputeSummaryDeterministic(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Name: "Milk", Quantity: 2, PricePerUnit: 1.5, ExpiryDate: march(20, 10), CreatedAt: march(17, 9)},
		{ID: "b", Name: "Bread", Quantity: 1, PricePerUnit: 3, ExpiryDate: march(18, 10), CreatedAt: march(11, 9)},
		{ID: "c", Name: "Jam", Quantity: 1, PricePerUnit: 4, ExpiryDate: march(20, 11), Used: true, UpdatedAt: march(19, 8)},
	}

	first, err := json.Marshal(ComputeSummary(items, wednesday))
	require.NoError(t, err)
	second, err := json.Marshal(ComputeSummary(items, wednesday))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeSummaryDoesNotMutateInput(t *testing.T) {
	items := []domain.Item{
		{ID: "b", Name: "Late", Quantity: 1, ExpiryDate: march(22, 0)},
		{ID: "a", Name: "Early", Quantity: 1, ExpiryDate: march(19, 0)},
	}
	before := make([]domain.Item, len(items))
	copy(before, items)

	_ = ComputeSummary(items, wednesday)
	assert.Equal(t, before, items)
}

func TestPct(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     string
	}{
		{"both zero", 0, 0, "0.0%"},
		{"previous zero", 5, 0, "100.0%"},
		{"increase", 150, 100, "50.0%"},
		{"decrease", 50, 100, "-50.0%"},
		{"fractional", 100, 30, "233.3%"},
		{"current zero", 0, 40, "-100.0%"},
		{"negative previous", 50, -100, "-150.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pct(tt.current, tt.previous))
		})
	}
}
