package mocks

import (
	"context"

	"github.com/phrazzld/contacts-api/internal/store"
)

// MockTransactor implements store.Transactor by invoking the function
// directly with a nil *sql.Tx. Store mocks ignore the transaction.
type MockTransactor struct {
	// Err, when set, is returned without running the function.
	Err error
	// Calls counts RunInTx invocations.
	Calls int
}

var _ store.Transactor = (*MockTransactor)(nil)

func (m *MockTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx, nil)
}
