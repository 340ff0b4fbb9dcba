package delete

import (
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/ledger"
	"github.com/robertncl/expense/internal/testutil"
)

func TestDescription(t *testing.T) {
	if desc := NewCommand().Description(); desc == "" {
		t.Error("Description() is empty")
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		index     string
		wantErr   error
		wantLeft  []string
		wantPrint string
	}{
		{
			name:      "delete shifts later records",
			index:     "0",
			wantLeft:  []string{"Bus", "Rent"},
			wantPrint: "Deleted expense #0",
		},
		{
			name:      "delete last",
			index:     "2",
			wantLeft:  []string{"Coffee", "Bus"},
			wantPrint: "Deleted expense #2",
		},
		{
			name:     "out of range",
			index:    "3",
			wantErr:  ledger.ErrIndexOutOfRange,
			wantLeft: []string{"Coffee", "Bus", "Rent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, out := testutil.SetupSession(t, nil,
				testutil.Record{Description: "Coffee", Amount: "3.50", Category: category.Food, Date: "2024-01-01"},
				testutil.Record{Description: "Bus", Amount: "2.75", Category: category.Transport, Date: "2024-01-02"},
				testutil.Record{Description: "Rent", Amount: "900", Category: category.Bills, Date: "2024-01-03"},
			)

			cmd := NewCommand()
			fs := flag.NewFlagSet("delete", flag.ContinueOnError)
			cmd.SetFlags(fs)
			if err := fs.Parse([]string{"-i", tt.index}); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			err := cmd.Run(context.Background(), session)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			records, err := session.Ledger.Records(context.Background())
			if err != nil {
				t.Fatalf("Records() error = %v", err)
			}

			got := make([]string, len(records))
			for i, r := range records {
				got[i] = r.Description()
			}
			if strings.Join(got, ",") != strings.Join(tt.wantLeft, ",") {
				t.Errorf("Records() = %v, want %v", got, tt.wantLeft)
			}

			if !strings.Contains(out.String(), tt.wantPrint) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantPrint)
			}
		})
	}
}
