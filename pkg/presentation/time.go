package presentation

import (
	"fmt"
	"time"

	"github.com/jesseduffield/lazyls/pkg/config"
	"github.com/jesseduffield/lazyls/pkg/utils"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day

	recentLayout = "_2 Jan 15:04"
	olderLayout  = "_2 Jan  2006"
	dateLayout   = "2006-01-02"
	clockLayout  = "15:04"
)

// FormatTime renders a timestamp in the configured style
func (r *Renderer) FormatTime(t time.Time) utils.Cell {
	age := r.now().Sub(t)
	local := t.In(r.location)

	switch r.Config.TimeStyle {
	case config.TimeStyleISO:
		return utils.NewCell(local.Format(dateLayout), r.Theme.Date...).
			Append(" ").
			Append(local.Format(clockLayout), r.Theme.Time...)
	case config.TimeStyleRelative:
		n, unit := RelativeAge(age)
		return utils.NewCell(fmt.Sprintf("%2d", n), r.Theme.Time...).
			Append(" ").
			Append(unit, r.Theme.Date...)
	default:
		return utils.NewCell(local.Format(DefaultLayout(age)), r.Theme.Date...)
	}
}

// DefaultLayout shows the time of day for anything up to two years old and
// the year beyond that. The cut-off is whole days divided by 365, truncated,
// so it lands somewhere in the second year rather than on a calendar boundary.
func DefaultLayout(age time.Duration) string {
	if int64(age/day)/365 > 1 {
		return olderLayout
	}
	return recentLayout
}

// RelativeAge buckets an age into a count and a unit, e.g. (3, "days").
// Months are 30 days and years are 365. Ages in the future count as zero seconds.
func RelativeAge(age time.Duration) (int64, string) {
	if age < 0 {
		age = 0
	}

	days := int64(age / day)
	switch {
	case age < time.Minute:
		return pluralize(int64(age/time.Second), "second")
	case age < time.Hour:
		return pluralize(int64(age/time.Minute), "minute")
	case age < day:
		return pluralize(int64(age/time.Hour), "hour")
	case age < month:
		return pluralize(days, "day")
	case age < year:
		return pluralize(days/30, "month")
	default:
		return pluralize(days/365, "year")
	}
}

func pluralize(n int64, unit string) (int64, string) {
	if n == 1 {
		return n, unit
	}
	return n, unit + "s"
}
