package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/robertncl/expense/internal/ledger"
)

const (
	decimalPlaces = 2
)

// CSV exports ledger entries to CSV format
// format: Index,Description,Amount,Category,Date
func CSV(writer io.Writer, entries []ledger.Entry) error {
	w := csv.NewWriter(writer)

	// Pre-allocate records slice: header + all expense records
	records := make([][]string, 0, len(entries)+1)

	records = append(records, []string{"Index", "Description", "Amount", "Category", "Date"})

	for _, entry := range entries {
		records = append(records, []string{
			strconv.Itoa(entry.Index),
			entry.Description(),
			entry.Amount().StringFixed(decimalPlaces),
			entry.Category().String(),
			entry.Date(),
		})
	}

	// WriteAll flushes
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}
