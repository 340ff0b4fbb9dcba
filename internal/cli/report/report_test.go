package report

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/testutil"
)

func TestDescription(t *testing.T) {
	want := "Displays the total spent and the breakdown by category"
	if desc := NewCommand().Description(); desc != want {
		t.Errorf("Description() = %v, want %v", desc, want)
	}
}

func TestRun(t *testing.T) {
	records := []testutil.Record{
		{Description: "Coffee", Amount: "3.50", Category: category.Food, Date: "2024-01-01"},
		{Description: "Coffee", Amount: "6.50", Category: category.Food, Date: "2024-01-02"},
		{Description: "Rent", Amount: "30", Category: category.Bills, Date: "2024-01-03"},
	}

	tests := []struct {
		name    string
		records []testutil.Record
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "empty ledger",
			want: []string{
				"Total spent: $0.00 (0 expenses)",
				"No spending to chart yet.",
			},
			notWant: []string{"Repeated descriptions"},
		},
		{
			name:    "breakdown",
			records: records,
			want: []string{
				"Total spent: $40.00 (3 expenses)",
				"Food",
				"$10.00  25.0%",
				"Bills",
				"$30.00  75.0%",
				"Repeated descriptions: Coffee",
			},
			notWant: []string{"Transport", "average"},
		},
		{
			name:    "verbose",
			records: records,
			args:    []string{"-v"},
			want: []string{
				"    2024-01-01 Coffee $3.50",
				"    2024-01-03 Rent $30.00",
				"    average $5.00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, out := testutil.SetupSession(t, nil, tt.records...)

			cmd := NewCommand()
			fs := flag.NewFlagSet("report", flag.ContinueOnError)
			cmd.SetFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if err := cmd.Run(context.Background(), session); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			got := out.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output does not contain %q\noutput:\n%s", w, got)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(got, nw) {
					t.Errorf("output contains %q\noutput:\n%s", nw, got)
				}
			}
		})
	}
}
