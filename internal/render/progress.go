// Package render turns a goal plus "now" into the text shown in chat. All
// functions are pure: the current date is an argument, never read from the
// clock, so rendering is fully testable.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
)

const (
	fullSlot  = "█"
	halfSlot  = "▌"
	emptySlot = "░"

	barSlots = 20
)

// Card renders the full chat card for a goal: header, status line and
// progress bar.
func Card(g *domain.Goal, today time.Time) string {
	return fmt.Sprintf("%s\n%s\n%s", Header(g), StatusLine(g, today), Bar(g.Completed, g.Target))
}

// Header renders the name and counts, e.g. "Read Book — 5/20".
func Header(g *domain.Goal) string {
	return fmt.Sprintf("%s — %d/%d", g.Name, g.Completed, g.Target)
}

// StatusLine renders the deadline/pacing line. The cases are mutually
// exclusive and evaluated in order: complete, overdue, due today, pacing.
//
// The due-today boundary fires at daysLeft == -1, not 0. That convention is
// deliberate; changing it silently shifts user-visible deadline messaging.
func StatusLine(g *domain.Goal, today time.Time) string {
	if g.Done() {
		return "Complete. Well done!"
	}

	days := DaysLeft(g.Deadline, today)
	switch {
	case days < -1:
		return fmt.Sprintf("Overdue — the deadline was %s.", g.Deadline.Format(domain.DateLayout))
	case days == -1:
		return "Due today!"
	}

	perDay, perWeek := Pace(g.Remaining(), days)
	return fmt.Sprintf("Pace to finish by %s: %d/day · %d/week",
		g.Deadline.Format(domain.DateLayout), perDay, perWeek)
}

// Pace computes the per-day and per-week rates needed to finish remaining
// units within daysLeft days, using real division before the ceiling. A
// deadline of today would divide by zero; the divisor is clamped to one day.
func Pace(remaining, daysLeft int) (perDay, perWeek int) {
	if daysLeft < 1 {
		daysLeft = 1
	}
	perDay = int(math.Ceil(float64(remaining) / float64(daysLeft)))
	perWeek = int(math.Ceil(float64(remaining) / (float64(daysLeft) / 7)))
	return perDay, perWeek
}

// DaysLeft returns the whole days between today and the deadline, both
// truncated to their UTC calendar date.
func DaysLeft(deadline, today time.Time) int {
	d := dateOnly(deadline)
	t := dateOnly(today)
	return int(d.Sub(t).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Percent returns the completion percentage rounded to two decimal places.
// A zero-target goal is instantly complete.
func Percent(completed, target int) float64 {
	if target == 0 {
		return 100
	}
	return math.Round(float64(completed)/float64(target)*100*100) / 100
}

// Bar renders a 20-slot progress bar at 5% per slot: two full slots per
// whole 10%, one half slot for any remainder, empty slots to fill out the
// rest.
func Bar(completed, target int) string {
	percent := Percent(completed, target)

	full := int(percent/10) * 2
	if full > barSlots {
		full = barSlots
	}
	half := 0
	if math.Mod(percent, 10) != 0 && full < barSlots {
		half = 1
	}
	empty := barSlots - full - half

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strings.Repeat(fullSlot, full))
	b.WriteString(strings.Repeat(halfSlot, half))
	b.WriteString(strings.Repeat(emptySlot, empty))
	b.WriteString("]")
	fmt.Fprintf(&b, " %.2f%%", percent)
	return b.String()
}
