package services

import (
	"testing"

	"finmate/internal/core"
)

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		emails []string
		want   []int64
	}{
		{
			name:   "exact division",
			total:  9000,
			emails: []string{"a@x.com", "b@x.com", "c@x.com"},
			want:   []int64{3000, 3000, 3000},
		},
		{
			name:   "remainder lands on first shares",
			total:  10000,
			emails: []string{"a@x.com", "b@x.com", "c@x.com"},
			want:   []int64{3334, 3333, 3333},
		},
		{
			name:   "single participant owes everything",
			total:  4200,
			emails: []string{"a@x.com"},
			want:   []int64{4200},
		},
		{
			name:   "no participants",
			total:  4200,
			emails: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitEvenly(core.Money{Cents: tt.total}, tt.emails)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d shares, want %d", len(got), len(tt.want))
			}
			var sum int64
			for i, p := range got {
				if p.AmountOwed.Cents != tt.want[i] {
					t.Errorf("share %d = %d, want %d", i, p.AmountOwed.Cents, tt.want[i])
				}
				sum += p.AmountOwed.Cents
			}
			if len(got) > 0 && sum != tt.total {
				t.Errorf("shares sum to %d, want %d", sum, tt.total)
			}
		})
	}
}
