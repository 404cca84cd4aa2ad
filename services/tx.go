package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// inTx wraps a write in one transaction and retries it a single time when
// postgres reports a serialization failure. The unique constraints in the
// schema remain the authoritative guard for check-then-insert races.
func inTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.Transaction(fn)
	if err != nil && isSerializationFailure(err) {
		err = db.Transaction(fn)
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

// isDuplicateKey recognizes a unique-constraint violation from either
// backend, so a lost check-then-insert race still surfaces as a conflict.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
