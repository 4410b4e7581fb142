package domain

import "context"

// Transactor runs fn inside a single transaction. Repositories called with the
// context passed to fn take part in that transaction. If fn returns an error
// the transaction is rolled back.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
