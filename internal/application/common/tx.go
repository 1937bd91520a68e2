package common

import "context"

// Transactor runs a function inside a database transaction. Implemented
// by db.TransactionManager; tests substitute a pass-through.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
