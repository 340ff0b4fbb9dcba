package ledger

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "3.50", want: "3.5"},
		{input: " 12 ", want: "12"},
		{input: "0", want: "0"},
		{input: "1e2", want: "100"},
		{input: "abc", wantErr: true},
		{input: "3.50abc", wantErr: true},
		{input: "NaN", wantErr: true},
		{input: "-0.01", wantErr: true},
		{input: "1e400", wantErr: true},
		{input: "-1e400", wantErr: true},
		{input: "1e300", want: "1" + strings.Repeat("0", 300)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount() error = %v, want %v", err, ErrInvalidAmount)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount() unexpected error = %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount() = %v, want %v", got.String(), tt.want)
			}
		})
	}
}
