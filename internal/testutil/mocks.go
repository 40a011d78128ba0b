package testutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/sheetsync/sheetsync/internal/sources"
)

var ErrSheetNotFound = errors.New("sheet not found")

// MockSheet is an in-memory spreadsheet, keys are gids and values CSV texts.
// Requested gids are recorded in order.
type MockSheet struct {
	Sheets    map[string]string
	Requested []string
}

func (m *MockSheet) Fetch(ctx context.Context, gid string) (sources.Table, error) {
	m.Requested = append(m.Requested, gid)
	if ctx.Err() != nil {
		return sources.Table{}, &sources.FetchError{GID: gid, Err: ctx.Err()}
	}
	body, ok := m.Sheets[gid]
	if !ok {
		return sources.Table{}, &sources.FetchError{GID: gid, Err: fmt.Errorf("%w: %s", ErrSheetNotFound, gid)}
	}
	t, err := sources.ParseTable([]byte(body))
	if err != nil {
		return sources.Table{}, &sources.FetchError{GID: gid, Err: err}
	}
	return t, nil
}
