package inmemdb

import (
	"sync"

	"github.com/samber/lo"

	"github.com/trezcool/edtech/core/assignment"
	"github.com/trezcool/edtech/core/submission"
	"github.com/trezcool/edtech/core/user"
)

type (
	// DB holds every record for the lifetime of the process. Nothing is ever persisted.
	DB struct {
		user       *table[user.User]
		assignment *table[assignment.Assignment]
		submission *table[submission.Submission]
	}

	// table is an append-only, ordered collection.
	// append and scan do not lock: repositories hold the table's lock around them.
	table[T any] struct {
		sync.RWMutex
		rows []T
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       newTable[user.User](),
		assignment: newTable[assignment.Assignment](),
		submission: newTable[submission.Submission](),
	}
	return db, nil
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make([]T, 0)}
}

func (t *table[T]) append(row T) {
	t.rows = append(t.rows, row)
}

// scan returns a copy of the rows matching pred, in insertion order. Never nil.
func (t *table[T]) scan(pred func(row T) bool) []T {
	return lo.Filter(t.rows, func(row T, _ int) bool { return pred(row) })
}

// first returns the earliest inserted row matching pred.
func (t *table[T]) first(pred func(row T) bool) (T, bool) {
	return lo.Find(t.rows, pred)
}

func all[T any](T) bool { return true }
