package disruptions

import (
	"context"
	"testing"
	"time"

	"wayfare/models"
)

func TestCategorizeSeverity(t *testing.T) {
	high := CategorizeSeverity(models.SeverityHigh)
	if high.Priority != 1 || !high.RequiresAction || !high.SuggestReplanning {
		t.Fatalf("unexpected high policy: %+v", high)
	}

	moderate := CategorizeSeverity(models.SeverityModerate)
	if moderate.Priority != 2 || !moderate.RequiresAction || moderate.SuggestReplanning {
		t.Fatalf("unexpected moderate policy: %+v", moderate)
	}

	low := CategorizeSeverity(models.SeverityLow)
	if low.Priority != 3 || low.RequiresAction || low.SuggestReplanning {
		t.Fatalf("unexpected low policy: %+v", low)
	}

	// unknown labels fall back to the low policy
	if got := CategorizeSeverity("catastrophic"); got != low {
		t.Fatalf("unknown severity should map to low policy, got %+v", got)
	}
}

func TestCurrentDisruptionsSeededSequence(t *testing.T) {
	start := models.NewDate(2026, 7, 13) // Monday
	end := models.NewDate(2026, 7, 19)   // Sunday

	a := NewService(42)
	b := NewService(42)

	for i := 0; i < 10; i++ {
		got, err := a.CurrentDisruptions(context.Background(), "Lisbon", start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, _ := b.CurrentDisruptions(context.Background(), "Lisbon", start, end)
		if len(got) != len(want) {
			t.Fatalf("seeded services diverged at call %d", i)
		}
		if len(got) > 0 && got[0].Title != want[0].Title {
			t.Fatalf("seeded services picked different records at call %d", i)
		}
	}
}

func TestCurrentDisruptionsRespectsContext(t *testing.T) {
	svc := NewService(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.CurrentDisruptions(ctx, "Lisbon", models.NewDate(2026, 7, 13), models.NewDate(2026, 7, 19)); err == nil {
		t.Fatal("expected context error")
	}
}

func TestWeekendDates(t *testing.T) {
	// Mon 13th through Sun 19th July 2026
	dates := weekendDates(models.NewDate(2026, 7, 13), models.NewDate(2026, 7, 19))
	if len(dates) != 2 {
		t.Fatalf("expected Saturday and Sunday, got %v", dates)
	}
	if dates[0].Weekday() != time.Saturday || dates[1].Weekday() != time.Sunday {
		t.Fatalf("unexpected weekend days: %v", dates)
	}

	// a midweek-only range has no weekend
	if got := weekendDates(models.NewDate(2026, 7, 14), models.NewDate(2026, 7, 16)); len(got) != 0 {
		t.Fatalf("expected no weekend dates, got %v", got)
	}
}
