package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/robertncl/expense/internal/category"
	"github.com/robertncl/expense/internal/storage"
)

type scanner func(dest ...any) error

func (s *sqliteStorage) Append(ctx context.Context, expense storage.Expense) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses(description, amount, category, date) VALUES (?, ?, ?, ?)",
		expense.Description(), expense.Amount().String(), string(expense.Category()), expense.Date())
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	length, err := count(ctx, tx)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return length - 1, nil
}

func (s *sqliteStorage) Get(ctx context.Context, index int) (storage.Expense, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck // read only

	id, err := idAt(ctx, tx, index)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRowContext(ctx, "SELECT description, amount, category, date FROM expenses WHERE id = ?", id)
	return expenseFromRow(row.Scan)
}

func (s *sqliteStorage) Replace(ctx context.Context, index int, expense storage.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	id, err := idAt(ctx, tx, index)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE expenses SET description = ?, amount = ?, category = ?, date = ? WHERE id = ?",
		expense.Description(), expense.Amount().String(), string(expense.Category()), expense.Date(), id)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	return tx.Commit()
}

func (s *sqliteStorage) Remove(ctx context.Context, index int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	id, err := idAt(ctx, tx, index)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return tx.Commit()
}

func (s *sqliteStorage) All(ctx context.Context) ([]storage.Expense, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT description, amount, category, date FROM expenses ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []storage.Expense{}
	for rows.Next() {
		expense, scanErr := expenseFromRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

func (s *sqliteStorage) Len(ctx context.Context) (int, error) {
	var length int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses").Scan(&length)
	return length, err
}

func count(ctx context.Context, tx *sql.Tx) (int, error) {
	var length int
	err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses").Scan(&length)
	return length, err
}

// idAt resolves a zero based position to the row id at that position.
func idAt(ctx context.Context, tx *sql.Tx, index int) (int64, error) {
	if index < 0 {
		length, err := count(ctx, tx)
		if err != nil {
			return 0, err
		}
		return 0, storage.IndexError(index, length)
	}

	var id int64
	err := tx.QueryRowContext(ctx, "SELECT id FROM expenses ORDER BY id LIMIT 1 OFFSET ?", index).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		length, countErr := count(ctx, tx)
		if countErr != nil {
			return 0, countErr
		}
		return 0, storage.IndexError(index, length)
	}

	return id, err
}

func expenseFromRow(scan scanner) (storage.Expense, error) {
	var description, amount, categoryName, date string

	if err := scan(&description, &amount, &categoryName, &date); err != nil {
		return nil, err
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}

	return storage.NewExpense(description, value, category.Category(categoryName), date), nil
}
