package memory

import (
	"context"
	"slices"

	"github.com/robertncl/expense/internal/storage"
)

// Store is a slice backed storage.Storage. It is not safe for concurrent use;
// the ledger serializes access.
type Store struct {
	items []storage.Expense
}

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, e storage.Expense) (int, error) {
	s.items = append(s.items, e)
	return len(s.items) - 1, nil
}

func (s *Store) Get(_ context.Context, index int) (storage.Expense, error) {
	if err := s.check(index); err != nil {
		return nil, err
	}
	return s.items[index], nil
}

func (s *Store) Replace(_ context.Context, index int, e storage.Expense) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.items[index] = e
	return nil
}

func (s *Store) Remove(_ context.Context, index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.items = slices.Delete(s.items, index, index+1)
	return nil
}

func (s *Store) All(_ context.Context) ([]storage.Expense, error) {
	return slices.Clone(s.items), nil
}

func (s *Store) Len(_ context.Context) (int, error) {
	return len(s.items), nil
}

func (s *Store) Close() error {
	s.items = nil
	return nil
}

func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.items) {
		return storage.IndexError(index, len(s.items))
	}
	return nil
}
