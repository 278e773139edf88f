package reminder

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIDDeterministic(t *testing.T) {
	if ID("shift-1", KindStart) != ID("shift-1", KindStart) {
		t.Error("same shift and kind must map to the same id")
	}
	if ID("shift-1", KindStart) == ID("shift-1", KindEnd) {
		t.Error("start and end reminders must have distinct ids")
	}
	if ID("shift-1", KindStart) == ID("shift-2", KindStart) {
		t.Error("different shifts must have distinct ids")
	}
}

func TestIDsMatchDerive(t *testing.T) {
	now := date(2025, time.January, 1)
	got := Derive("shift-1", date(2025, time.June, 10), "08:00", "16:00", "City General", now)
	if len(got) != 2 {
		t.Fatalf("Derive() returned %d reminders, want 2", len(got))
	}

	ids := IDs("shift-1")
	if got[0].ID != ids[0] || got[1].ID != ids[1] {
		t.Errorf("IDs() = %v, derived ids = [%d %d]", ids, got[0].ID, got[1].ID)
	}
}

func TestDerive(t *testing.T) {
	now := date(2025, time.January, 1)
	shiftDate := date(2025, time.June, 10)

	t.Run("fire times lead the shift boundaries", func(t *testing.T) {
		got := Derive("shift-1", shiftDate, "08:00", "16:00", "City General", now)
		if len(got) != 2 {
			t.Fatalf("Derive() returned %d reminders, want 2", len(got))
		}

		wantStart := time.Date(2025, time.June, 10, 7, 0, 0, 0, time.UTC)
		if !got[0].FireAt.Equal(wantStart) {
			t.Errorf("start FireAt = %v, want %v", got[0].FireAt, wantStart)
		}
		wantEnd := time.Date(2025, time.June, 10, 15, 45, 0, 0, time.UTC)
		if !got[1].FireAt.Equal(wantEnd) {
			t.Errorf("end FireAt = %v, want %v", got[1].FireAt, wantEnd)
		}
		if got[0].Kind != KindStart || got[1].Kind != KindEnd {
			t.Errorf("kinds = %q, %q", got[0].Kind, got[1].Kind)
		}
	})

	t.Run("overnight end reminder lands on the next day", func(t *testing.T) {
		got := Derive("shift-1", shiftDate, "22:00", "06:00", "City General", now)
		if len(got) != 2 {
			t.Fatalf("Derive() returned %d reminders, want 2", len(got))
		}
		wantEnd := time.Date(2025, time.June, 11, 5, 45, 0, 0, time.UTC)
		if !got[1].FireAt.Equal(wantEnd) {
			t.Errorf("end FireAt = %v, want %v", got[1].FireAt, wantEnd)
		}
	})

	t.Run("past fire times are dropped", func(t *testing.T) {
		late := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
		got := Derive("shift-1", shiftDate, "08:00", "16:00", "City General", late)
		if len(got) != 1 {
			t.Fatalf("Derive() returned %d reminders, want 1", len(got))
		}
		if got[0].Kind != KindEnd {
			t.Errorf("surviving reminder kind = %q, want %q", got[0].Kind, KindEnd)
		}
	})

	t.Run("fully past shift yields no reminders", func(t *testing.T) {
		after := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
		if got := Derive("shift-1", shiftDate, "08:00", "16:00", "City General", after); len(got) != 0 {
			t.Errorf("Derive() returned %d reminders, want 0", len(got))
		}
	})

	t.Run("unparseable times yield no reminders", func(t *testing.T) {
		if got := Derive("shift-1", shiftDate, "8am", "16:00", "City General", now); got != nil {
			t.Errorf("Derive() = %v, want nil", got)
		}
	})

	t.Run("body names the hospital", func(t *testing.T) {
		got := Derive("shift-1", shiftDate, "08:00", "16:00", "City General", now)
		if got[0].Body != "Your shift at City General starts at 08:00" {
			t.Errorf("start Body = %q", got[0].Body)
		}
		if got[1].Body != "Your shift at City General ends at 16:00" {
			t.Errorf("end Body = %q", got[1].Body)
		}
	})
}
