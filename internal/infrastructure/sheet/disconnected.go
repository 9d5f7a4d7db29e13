package sheet

import "context"

// Disconnected is the sentinel store used when no credentials or workbook
// are configured. The process starts and serves pages; every data
// operation fails with ErrDisconnected and degrades at the call site.
type Disconnected struct{}

var _ Store = Disconnected{}

func (Disconnected) Rows(context.Context, string) ([][]string, error) {
	return nil, ErrDisconnected
}

func (Disconnected) AppendRow(context.Context, string, []string) error {
	return ErrDisconnected
}

func (Disconnected) UpdateCell(context.Context, string, int, int, string) error {
	return ErrDisconnected
}
