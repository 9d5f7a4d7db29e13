// Package sheetfake provides an in-memory sheet.Store with real tab
// semantics (header row, 1-based addressing) for repository tests.
package sheetfake

import (
	"context"
	"fmt"
	"sync"

	"control-horas/internal/infrastructure/sheet"
)

type Store struct {
	mu   sync.Mutex
	tabs map[string][][]string

	// Error injection; when set, the matching operation fails.
	RowsErr   error
	AppendErr error
	UpdateErr error
}

var _ sheet.Store = (*Store)(nil)

func New() *Store {
	return &Store{tabs: make(map[string][][]string)}
}

// Seed replaces a tab's contents, header row included.
func (s *Store) Seed(name string, rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([][]string, len(rows))
	for i, r := range rows {
		copied[i] = append([]string(nil), r...)
	}
	s.tabs[name] = copied
}

// Tab returns a copy of a tab's current contents for assertions.
func (s *Store) Tab(name string) [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([][]string, len(s.tabs[name]))
	for i, r := range s.tabs[name] {
		rows[i] = append([]string(nil), r...)
	}
	return rows
}

func (s *Store) Rows(ctx context.Context, name string) ([][]string, error) {
	if s.RowsErr != nil {
		return nil, s.RowsErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tab, ok := s.tabs[name]
	if !ok {
		return nil, fmt.Errorf("sheetfake: no tab %q", name)
	}
	rows := make([][]string, len(tab))
	for i, r := range tab {
		rows[i] = append([]string(nil), r...)
	}
	return rows, nil
}

func (s *Store) AppendRow(ctx context.Context, name string, values []string) error {
	if s.AppendErr != nil {
		return s.AppendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tabs[name]; !ok {
		return fmt.Errorf("sheetfake: no tab %q", name)
	}
	s.tabs[name] = append(s.tabs[name], append([]string(nil), values...))
	return nil
}

func (s *Store) UpdateCell(ctx context.Context, name string, row, col int, value string) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, ok := s.tabs[name]
	if !ok {
		return fmt.Errorf("sheetfake: no tab %q", name)
	}
	if row < 1 || row > len(rows) || col < 1 {
		return fmt.Errorf("sheetfake: cell %s out of range", sheet.CellName(row, col))
	}
	for len(rows[row-1]) < col {
		rows[row-1] = append(rows[row-1], "")
	}
	rows[row-1][col-1] = value
	s.tabs[name] = rows
	return nil
}
