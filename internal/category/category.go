package category

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	Food      Category = "Food"
	Transport Category = "Transport"
	Shopping  Category = "Shopping"
	Bills     Category = "Bills"
	Other     Category = "Other"

	// All is the filter sentinel matching every category. It is never stored on a record.
	All Category = "All"
)

var ErrUnknownCategory = errors.New("unknown category")

var categories = []Category{Food, Transport, Shopping, Bills, Other}

// colors is indexed by the category position in categories.
var colors = []string{"#4fc3f7", "#81c784", "#ffb74d", "#e57373", "#ba68c8"}

// List returns the fixed categories in display order.
func List() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Default is the category preselected when none is given.
func Default() Category {
	return categories[0]
}

func (c Category) String() string {
	return string(c)
}

func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of c in the fixed category list, or -1.
func (c Category) Index() int {
	for i, cat := range categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// Color returns the display color of c, or an empty string for unknown categories.
func (c Category) Color() string {
	i := c.Index()
	if i < 0 {
		return ""
	}
	return colors[i]
}

// Parse resolves s case-insensitively to one of the fixed categories.
func Parse(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, cat := range categories {
		if strings.EqualFold(string(cat), s) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ParseFilter is like Parse but also accepts All. An empty string means All.
func ParseFilter(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(string(All), s) {
		return All, nil
	}
	return Parse(s)
}
