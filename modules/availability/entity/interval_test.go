package entity

import (
	"testing"
	"time"

	"meetbook/core/errors"
)

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("parse start %q: %v", start, err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("parse end %q: %v", end, err)
	}
	iv, appErr := NewInterval(s, e)
	if appErr != nil {
		t.Fatalf("NewInterval(%s, %s): %v", start, end, appErr)
	}
	return iv
}

func TestNewInterval(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"valid", base, base.Add(time.Hour), false},
		{"empty", base, base, true},
		{"inverted", base.Add(time.Hour), base, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInterval(tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if err.Code != errors.ErrInvalidRange {
					t.Errorf("code = %s, want %s", err.Code, errors.ErrInvalidRange)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewIntervalNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	start := time.Date(2026, 3, 1, 16, 0, 0, 0, loc)
	end := time.Date(2026, 3, 1, 17, 0, 0, 0, loc)

	iv, err := NewInterval(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv.Start.Location() != time.UTC || iv.End.Location() != time.UTC {
		t.Errorf("interval not in UTC: %v .. %v", iv.Start, iv.End)
	}
	if !iv.Start.Equal(start) {
		t.Errorf("normalization changed the instant: %v != %v", iv.Start, start)
	}
}

func TestContains(t *testing.T) {
	outer := mustInterval(t, "2026-03-01T09:00:00Z", "2026-03-01T17:00:00Z")

	tests := []struct {
		name  string
		inner Interval
		want  bool
	}{
		{"strictly inside", mustInterval(t, "2026-03-01T10:00:00Z", "2026-03-01T11:00:00Z"), true},
		{"equal", outer, true},
		{"shares start edge", mustInterval(t, "2026-03-01T09:00:00Z", "2026-03-01T10:00:00Z"), true},
		{"shares end edge", mustInterval(t, "2026-03-01T16:00:00Z", "2026-03-01T17:00:00Z"), true},
		{"starts before", mustInterval(t, "2026-03-01T08:00:00Z", "2026-03-01T10:00:00Z"), false},
		{"ends after", mustInterval(t, "2026-03-01T16:00:00Z", "2026-03-01T18:00:00Z"), false},
		{"disjoint", mustInterval(t, "2026-03-02T09:00:00Z", "2026-03-02T10:00:00Z"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	a := mustInterval(t, "2026-03-01T10:00:00Z", "2026-03-01T12:00:00Z")

	tests := []struct {
		name string
		b    Interval
		want bool
	}{
		{"identical", a, true},
		{"partial left", mustInterval(t, "2026-03-01T09:00:00Z", "2026-03-01T11:00:00Z"), true},
		{"partial right", mustInterval(t, "2026-03-01T11:00:00Z", "2026-03-01T13:00:00Z"), true},
		{"b inside a", mustInterval(t, "2026-03-01T10:30:00Z", "2026-03-01T11:30:00Z"), true},
		{"a inside b", mustInterval(t, "2026-03-01T09:00:00Z", "2026-03-01T13:00:00Z"), true},
		{"touching before", mustInterval(t, "2026-03-01T09:00:00Z", "2026-03-01T10:00:00Z"), false},
		{"touching after", mustInterval(t, "2026-03-01T12:00:00Z", "2026-03-01T13:00:00Z"), false},
		{"disjoint", mustInterval(t, "2026-03-01T14:00:00Z", "2026-03-01T15:00:00Z"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	outer := mustInterval(t, "2026-03-01T09:00:00Z", "2026-03-01T17:00:00Z")

	tests := []struct {
		name       string
		cut        Interval
		wantBefore *Interval
		wantAfter  *Interval
	}{
		{
			name:       "middle leaves both remainders",
			cut:        mustInterval(t, "2026-03-01T12:00:00Z", "2026-03-01T13:00:00Z"),
			wantBefore: &Interval{Start: outer.Start, End: mustInterval(t, "2026-03-01T12:00:00Z", "2026-03-01T13:00:00Z").Start},
			wantAfter:  &Interval{Start: mustInterval(t, "2026-03-01T12:00:00Z", "2026-03-01T13:00:00Z").End, End: outer.End},
		},
		{
			name:      "cut at start leaves only after",
			cut:       mustInterval(t, "2026-03-01T09:00:00Z", "2026-03-01T10:00:00Z"),
			wantAfter: &Interval{Start: mustInterval(t, "2026-03-01T09:00:00Z", "2026-03-01T10:00:00Z").End, End: outer.End},
		},
		{
			name:       "cut at end leaves only before",
			cut:        mustInterval(t, "2026-03-01T16:00:00Z", "2026-03-01T17:00:00Z"),
			wantBefore: &Interval{Start: outer.Start, End: mustInterval(t, "2026-03-01T16:00:00Z", "2026-03-01T17:00:00Z").Start},
		},
		{
			name: "exact cut leaves nothing",
			cut:  outer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, after := outer.Subtract(tt.cut)

			assertRemainder(t, "before", before, tt.wantBefore)
			assertRemainder(t, "after", after, tt.wantAfter)

			// The cut plus the remainders must conserve the original duration.
			total := tt.cut.Duration()
			if before != nil {
				total += before.Duration()
			}
			if after != nil {
				total += after.Duration()
			}
			if total != outer.Duration() {
				t.Errorf("duration not conserved: cut+remainders = %v, outer = %v", total, outer.Duration())
			}
		})
	}
}

func assertRemainder(t *testing.T, label string, got, want *Interval) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Errorf("%s = [%v, %v), want nil", label, got.Start, got.End)
		}
		return
	}
	if got == nil {
		t.Fatalf("%s = nil, want [%v, %v)", label, want.Start, want.End)
	}
	if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
		t.Errorf("%s = [%v, %v), want [%v, %v)", label, got.Start, got.End, want.Start, want.End)
	}
}
