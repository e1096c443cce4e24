// Package store implements the write-side contract of the schema: every
// operation either commits a constraint-satisfying write or rejects it with
// the specific violated constraint, leaving existing data unchanged.
// Multi-row writes (order placement, referral creation, order deletion) run
// in a single transaction.
package store

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food-delivery-analytics/validation"
)

// ErrNotFound wraps gorm's record-not-found for lookups of missing rows.
var ErrNotFound = gorm.ErrRecordNotFound

// BcryptCost is the work factor for password hashing. Bulk loaders may lower
// it to bcrypt.MinCost.
var BcryptCost = bcrypt.DefaultCost

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for read-side queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// uniqueColumns maps the column a sqlite UNIQUE error names to the
// constraint the schema declares for it.
var uniqueColumns = map[string]struct {
	table      string
	constraint string
}{
	"users.email":                       {"users", "uq_users_email"},
	"acquisition_channels.channel_name": {"acquisition_channels", "uq_acquisition_channels_channel_name"},
	"referrals.referred_user_id":        {"referrals", "uq_referrals_referred_user_id"},
	"delivery_tracking.order_id":        {"delivery_tracking", "uq_delivery_tracking_order_id"},
}

// translate converts driver-level constraint failures into the same
// *validation.ConstraintError shape the validation layer produces, so
// callers see one error type regardless of which layer caught the write.
func translate(table string, err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		for column, c := range uniqueColumns {
			if strings.Contains(msg, column) {
				return &validation.ConstraintError{
					Table:      c.table,
					Constraint: c.constraint,
					Message:    "duplicate value for unique column " + column,
				}
			}
		}
		return &validation.ConstraintError{Table: table, Constraint: "unique", Message: msg}
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return &validation.ConstraintError{
			Table:      table,
			Constraint: "fk_" + table,
			Message:    "write references a missing row or is still referenced by dependents",
		}
	}
	if i := strings.Index(msg, "CHECK constraint failed: "); i >= 0 {
		name := msg[i+len("CHECK constraint failed: "):]
		if j := strings.IndexAny(name, " ("); j >= 0 {
			name = name[:j]
		}
		return &validation.ConstraintError{
			Table:      table,
			Constraint: name,
			Message:    "check constraint rejected the write",
		}
	}
	return err
}

func notFound(what string, id uint) error {
	return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func hashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
