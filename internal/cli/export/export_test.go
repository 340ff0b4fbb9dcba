package export

import (
	"context"
	"flag"
	"testing"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/cli"
	"github.com/robertncl/expense/internal/testutil"
)

func TestRun(t *testing.T) {
	records := []testutil.Record{
		{Description: "Coffee, large", Amount: "3.5", Category: category.Food, Date: "2024-01-01"},
		{Description: "Bus", Amount: "2.75", Category: category.Transport, Date: "2024-01-01"},
		{Description: "Lunch", Amount: "12", Category: category.Food, Date: "2024-01-02"},
	}

	tests := []struct {
		name string
		view cli.View
		args []string
		want string
	}{
		{
			name: "everything",
			view: cli.View{Category: category.All},
			want: "Index,Description,Amount,Category,Date\n" +
				"0,\"Coffee, large\",3.50,Food,2024-01-01\n" +
				"1,Bus,2.75,Transport,2024-01-01\n" +
				"2,Lunch,12.00,Food,2024-01-02\n",
		},
		{
			name: "session filter",
			view: cli.View{Category: category.Food, Date: "2024-01-02"},
			want: "Index,Description,Amount,Category,Date\n" +
				"2,Lunch,12.00,Food,2024-01-02\n",
		},
		{
			name: "flag override",
			view: cli.View{Category: category.Food},
			args: []string{"-c", "Transport"},
			want: "Index,Description,Amount,Category,Date\n" +
				"1,Bus,2.75,Transport,2024-01-01\n",
		},
		{
			name: "no match writes the header only",
			view: cli.View{Category: category.Bills},
			want: "Index,Description,Amount,Category,Date\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, out := testutil.SetupSession(t, nil, records...)
			session.View = tt.view

			cmd := NewCommand()
			fs := flag.NewFlagSet("export", flag.ContinueOnError)
			cmd.SetFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			if err := cmd.Run(context.Background(), session); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
