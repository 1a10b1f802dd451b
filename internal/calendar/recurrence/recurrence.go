// Package recurrence arma el texto del badge de recurrencia de un evento.
//
// La regla se guarda tal cual y nunca se expande en ocurrencias; acá sólo se
// lee para mostrarla.
package recurrence

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"
)

// Badge describe la recurrencia para la UI.
type Badge struct {
	Rule  string `json:"rule"`
	Label string `json:"label"`
	Valid bool   `json:"valid"`
}

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Describe devuelve el badge de rule. Una regla que no se puede leer se
// muestra igual, con etiqueta genérica.
func Describe(rule string) Badge {
	rule = strings.TrimSpace(rule)
	b := Badge{Rule: rule, Label: "Repeats"}
	if rule == "" {
		return b
	}

	opt, err := rrule.StrToROption(strings.TrimPrefix(rule, "RRULE:"))
	if err != nil {
		return b
	}
	b.Valid = true
	b.Label = label(opt)
	return b
}

func label(opt *rrule.ROption) string {
	var unit, base string
	switch opt.Freq {
	case rrule.YEARLY:
		base, unit = "Yearly", "years"
	case rrule.MONTHLY:
		base, unit = "Monthly", "months"
	case rrule.WEEKLY:
		base, unit = "Weekly", "weeks"
	case rrule.DAILY:
		base, unit = "Daily", "days"
	case rrule.HOURLY:
		base, unit = "Hourly", "hours"
	case rrule.MINUTELY:
		base, unit = "Every minute", "minutes"
	default:
		base, unit = "Repeats", "periods"
	}

	out := base
	if opt.Interval > 1 {
		out = fmt.Sprintf("Every %d %s", opt.Interval, unit)
	}

	if len(opt.Byweekday) > 0 {
		days := make([]string, 0, len(opt.Byweekday))
		for i := range opt.Byweekday {
			d := opt.Byweekday[i].Day()
			if d >= 0 && d < len(dayNames) {
				days = append(days, dayNames[d])
			}
		}
		if len(days) > 0 {
			out += " on " + strings.Join(days, ", ")
		}
	}

	switch {
	case opt.Count > 0:
		out += fmt.Sprintf(", %d times", opt.Count)
	case !opt.Until.IsZero():
		out += ", until " + opt.Until.Format("Jan 2, 2006")
	}
	return out
}
