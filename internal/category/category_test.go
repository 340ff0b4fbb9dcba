package category

import (
	"errors"
	"testing"
)

func TestList(t *testing.T) {
	want := []Category{Food, Transport, Shopping, Bills, Other}
	got := List()

	if len(got) != len(want) {
		t.Fatalf("List() returned %d categories, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	got[0] = Other
	if List()[0] != Food {
		t.Error("List() must return a copy")
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{Food, "#4fc3f7"},
		{Transport, "#81c784"},
		{Shopping, "#ffb74d"},
		{Bills, "#e57373"},
		{Other, "#ba68c8"},
		{All, ""},
		{Category("Travel"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			if got := tt.category.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	if !Shopping.Valid() {
		t.Error("Shopping should be valid")
	}

	if All.Valid() {
		t.Error("All is a filter sentinel and must not be a valid record category")
	}

	if Default() != Food {
		t.Errorf("Default() = %v, want %v", Default(), Food)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "exact", input: "Bills", want: Bills},
		{name: "lower case", input: "transport", want: Transport},
		{name: "surrounding spaces", input: "  other ", want: Other},
		{name: "all is not a category", input: "All", wantErr: true},
		{name: "unknown", input: "Travel", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownCategory) {
					t.Errorf("Parse() error = %v, want %v", err, ErrUnknownCategory)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "", want: All},
		{input: "all", want: All},
		{input: "All", want: All},
		{input: "food", want: Food},
		{input: "Travel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFilter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}
