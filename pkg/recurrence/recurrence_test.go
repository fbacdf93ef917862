package recurrence_test

import (
	"testing"
	"time"

	"smart-task-scheduler/pkg/recurrence"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		opt     recurrence.Options
		want    string
		wantErr bool
	}{
		{
			name: "Daily",
			opt:  recurrence.Options{Freq: "DAILY"},
			want: "FREQ=DAILY",
		},
		{
			name: "Every other week",
			opt:  recurrence.Options{Freq: "WEEKLY", Interval: 2},
			want: "FREQ=WEEKLY;INTERVAL=2",
		},
		{
			name: "Weekly on Mon Wed Fri",
			opt: recurrence.Options{
				Freq:      "WEEKLY",
				ByWeekday: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
			},
			want: "FREQ=WEEKLY;BYDAY=MO,WE,FR",
		},
		{
			name: "Monthly on the 1st",
			opt:  recurrence.Options{Freq: "MONTHLY", ByMonthDay: []int{1}},
			want: "FREQ=MONTHLY;BYMONTHDAY=1",
		},
		{
			name:    "Unknown frequency",
			opt:     recurrence.Options{Freq: "FORTNIGHTLY"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recurrence.Build(tt.opt)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Build() got = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	// Monday, May 6 2024, 09:00 UTC
	from := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	t.Run("Weekly MO WE FR over two weeks yields six occurrences", func(t *testing.T) {
		until := from.AddDate(0, 0, 13)

		got, err := recurrence.Expand("FREQ=WEEKLY;BYDAY=MO,WE,FR", from, until)
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if len(got) != 6 {
			t.Fatalf("Expand() returned %d occurrences, want 6: %v", len(got), got)
		}

		wantDays := []int{6, 8, 10, 13, 15, 17}
		for i, occ := range got {
			if occ.Day() != wantDays[i] {
				t.Errorf("occurrence %d on day %d, want %d", i, occ.Day(), wantDays[i])
			}
			if i > 0 && !got[i-1].Before(occ) {
				t.Errorf("occurrences out of chronological order at %d", i)
			}
		}
	})

	t.Run("Bounds are inclusive", func(t *testing.T) {
		until := from.AddDate(0, 0, 7)

		got, err := recurrence.Expand("FREQ=WEEKLY", from, until)
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expand() returned %d occurrences, want 2 (both bounds): %v", len(got), got)
		}
		if !got[0].Equal(from) || !got[1].Equal(until) {
			t.Errorf("Expand() got = %v, want [%v %v]", got, from, until)
		}
	})

	t.Run("Malformed rule", func(t *testing.T) {
		if _, err := recurrence.Expand("FREQ=NOPE", from, from.AddDate(0, 0, 7)); err == nil {
			t.Fatalf("expected error for malformed rule")
		}
	})

	t.Run("Inverted bounds", func(t *testing.T) {
		if _, err := recurrence.Expand("FREQ=DAILY", from, from.AddDate(0, 0, -1)); err == nil {
			t.Fatalf("expected error for inverted bounds")
		}
	})
}
