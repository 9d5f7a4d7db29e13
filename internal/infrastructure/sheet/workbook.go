package sheet

import (
	"context"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

// WorkbookStore serves the same contract from a local .xlsx file. It exists
// for development and standalone deployments without Google credentials.
// The file is reopened per operation; a mutex serializes writers.
type WorkbookStore struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*WorkbookStore)(nil)

func NewWorkbookStore(path string) (*WorkbookStore, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	_ = f.Close()
	return &WorkbookStore{path: path}, nil
}

// SeedWorkbook creates a fresh workbook holding the given sheets with their
// header rows. Used at startup when the configured workbook is absent.
func SeedWorkbook(path string, headers map[string][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	for name, header := range headers {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
		row := toInterfaces(header)
		if err := f.SetSheetRow(name, "A1", &row); err != nil {
			return err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func (s *WorkbookStore) Rows(ctx context.Context, sheet string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheet, err)
	}
	return rows, nil
}

func (s *WorkbookStore) AppendRow(ctx context.Context, sheet string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read %s: %w", sheet, err)
	}
	row := toInterfaces(values)
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", len(rows)+1), &row); err != nil {
		return fmt.Errorf("append to %s: %w", sheet, err)
	}
	return f.Save()
}

func (s *WorkbookStore) UpdateCell(ctx context.Context, sheet string, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("update %s!%s: %w", sheet, cell, err)
	}
	return f.Save()
}
