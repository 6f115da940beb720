// Package memory is an in-process ledger store used for local runs without PostgreSQL and in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Transaction
}

func New() *Store {
	return &Store{items: make(map[int64]models.Transaction)}
}

// List returns every transaction ordered by date descending, then id descending.
func (s *Store) List(_ context.Context) ([]*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Transaction, 0, len(s.items))
	for _, tx := range s.items {
		tx := tx
		out = append(out, &tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *Store) Create(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := *tx
	stored.ID = s.nextID
	stored.Description = copyString(tx.Description)
	s.items[stored.ID] = stored

	out := stored
	return &out, nil
}

// Update mirrors the NOT NULL constraints of the transactions table.
func (s *Store) Update(_ context.Context, params repository.UpdateParams) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[params.ID]; !ok {
		return nil, repository.ErrNotFound
	}
	switch {
	case params.Date == nil:
		return nil, notNullViolation("date")
	case params.Category == nil:
		return nil, notNullViolation("category")
	case params.Amount == nil:
		return nil, notNullViolation("amount")
	}

	stored := models.Transaction{
		ID:          params.ID,
		Date:        *params.Date,
		Category:    *params.Category,
		Amount:      *params.Amount,
		Description: copyString(params.Description),
	}
	s.items[params.ID] = stored

	out := stored
	return &out, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}

// Len reports how many transactions are stored.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func notNullViolation(column string) error {
	return fmt.Errorf("null value in column %q of relation \"transactions\" violates not-null constraint", column)
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
