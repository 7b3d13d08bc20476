package render

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func goalAt(completed, target, daysLeft int) *domain.Goal {
	return &domain.Goal{
		Name:      "Read Book",
		Target:    target,
		Completed: completed,
		Deadline:  today.AddDate(0, 0, daysLeft),
		Priority:  50,
	}
}

func TestBar_HalfComplete(t *testing.T) {
	// 5/10 → 50.00% → 10 full slots, no half slot, 10 empty.
	bar := Bar(5, 10)
	assert.Equal(t, "["+strings.Repeat("█", 10)+strings.Repeat("░", 10)+"] 50.00%", bar)
}

func TestBar_Empty(t *testing.T) {
	bar := Bar(0, 10)
	assert.Equal(t, "["+strings.Repeat("░", 20)+"] 0.00%", bar)
}

func TestBar_Full(t *testing.T) {
	bar := Bar(10, 10)
	assert.Equal(t, "["+strings.Repeat("█", 20)+"] 100.00%", bar)
}

func TestBar_HalfSlot(t *testing.T) {
	// 1/8 → 12.50% → 2 full slots, a half slot, 17 empty.
	bar := Bar(1, 8)
	assert.Equal(t, "[██▌"+strings.Repeat("░", 17)+"] 12.50%", bar)
}

func TestBar_ZeroTarget(t *testing.T) {
	// Division by zero guarded: instantly complete.
	bar := Bar(0, 0)
	assert.Equal(t, "["+strings.Repeat("█", 20)+"] 100.00%", bar)
}

func TestBar_AlwaysTwentySlots(t *testing.T) {
	for completed := 0; completed <= 7; completed++ {
		bar := Bar(completed, 7)
		slots := strings.Count(bar, "█") + strings.Count(bar, "▌") + strings.Count(bar, "░")
		assert.Equal(t, 20, slots, "completed=%d", completed)
	}
}

func TestPercent_Rounding(t *testing.T) {
	assert.InDelta(t, 33.33, Percent(1, 3), 0.001)
	assert.InDelta(t, 66.67, Percent(2, 3), 0.001)
	assert.Equal(t, 100.0, Percent(3, 3))
}

func TestPace(t *testing.T) {
	// 8 remaining over 4 days: 2/day, ceil(8/(4/7)) = 14/week.
	perDay, perWeek := Pace(8, 4)
	assert.Equal(t, 2, perDay)
	assert.Equal(t, 14, perWeek)
}

func TestPace_RealDivisionBeforeCeil(t *testing.T) {
	// 10 remaining over 3 days: ceil(3.33) = 4/day, ceil(10/0.4286) = 24/week.
	perDay, perWeek := Pace(10, 3)
	assert.Equal(t, 4, perDay)
	assert.Equal(t, 24, perWeek)
}

func TestPace_DeadlineTodayClamped(t *testing.T) {
	perDay, perWeek := Pace(5, 0)
	assert.Equal(t, 5, perDay)
	assert.Equal(t, 35, perWeek)
}

func TestDaysLeft(t *testing.T) {
	assert.Equal(t, 4, DaysLeft(today.AddDate(0, 0, 4), today))
	assert.Equal(t, 0, DaysLeft(today, today))
	assert.Equal(t, -1, DaysLeft(today.AddDate(0, 0, -1), today))
	// Time of day is irrelevant; only calendar dates count.
	assert.Equal(t, 1, DaysLeft(today.Add(13*time.Hour), today))
}

func TestStatusLine_Complete(t *testing.T) {
	line := StatusLine(goalAt(10, 10, 4), today)
	assert.Contains(t, line, "Complete")
}

func TestStatusLine_CompleteWinsOverOverdue(t *testing.T) {
	line := StatusLine(goalAt(10, 10, -30), today)
	assert.Contains(t, line, "Complete")
	assert.NotContains(t, line, "Overdue")
}

func TestStatusLine_Overdue(t *testing.T) {
	g := goalAt(2, 10, -2)
	line := StatusLine(g, today)
	assert.Contains(t, line, "Overdue")
	assert.Contains(t, line, g.Deadline.Format(domain.DateLayout))
}

func TestStatusLine_DueTodayBoundary(t *testing.T) {
	// The due-today message fires one day past the deadline, not on it.
	assert.Equal(t, "Due today!", StatusLine(goalAt(2, 10, -1), today))
	assert.NotEqual(t, "Due today!", StatusLine(goalAt(2, 10, 0), today))
}

func TestStatusLine_Pacing(t *testing.T) {
	line := StatusLine(goalAt(2, 10, 4), today)
	assert.Contains(t, line, "2/day")
	assert.Contains(t, line, "14/week")
}

func TestCard_ThreeLines(t *testing.T) {
	card := Card(goalAt(5, 10, 4), today)
	lines := strings.Split(card, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "Read Book — 5/10", lines[0])
}
