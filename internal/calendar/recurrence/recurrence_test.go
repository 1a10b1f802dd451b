package recurrence

import "testing"

func TestDescribe(t *testing.T) {
	cases := []struct {
		rule  string
		label string
		valid bool
	}{
		{"FREQ=DAILY", "Daily", true},
		{"FREQ=WEEKLY;BYDAY=MO,WE,FR", "Weekly on Mon, Wed, Fri", true},
		{"FREQ=WEEKLY;BYDAY=FR", "Weekly on Fri", true},
		{"FREQ=MONTHLY", "Monthly", true},
		{"FREQ=YEARLY", "Yearly", true},
		{"FREQ=DAILY;INTERVAL=2", "Every 2 days", true},
		{"FREQ=DAILY;COUNT=5", "Daily, 5 times", true},
		{"RRULE:FREQ=WEEKLY", "Weekly", true},
		{"not a rule", "Repeats", false},
	}
	for _, c := range cases {
		b := Describe(c.rule)
		if b.Label != c.label || b.Valid != c.valid {
			t.Fatalf("Describe(%q) = %+v, want label %q valid %v", c.rule, b, c.label, c.valid)
		}
	}
}

func TestDescribe_KeepsRuleVerbatim(t *testing.T) {
	rule := "FREQ=WEEKLY;BYDAY=MO,WE,FR"
	if got := Describe(rule).Rule; got != rule {
		t.Fatalf("expected rule untouched, got %q", got)
	}
}
