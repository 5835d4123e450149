package repository

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ConstraintError is a store-level rejection (unique, not null, foreign key,
// check). Messages name the offending request fields, never SQL internals.
type ConstraintError struct {
	Messages []string
	Err      error
}

func (e *ConstraintError) Error() string {
	return "constraint violation: " + strings.Join(e.Messages, "; ")
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// columnFields maps table columns to the request field names clients know.
var columnFields = map[string]string{
	"first_name":       "firstName",
	"last_name":        "lastName",
	"email_address":    "emailAddress",
	"password":         "password",
	"title":            "title",
	"description":      "description",
	"estimated_time":   "estimatedTime",
	"materials_needed": "materialsNeeded",
	"user_id":          "userId",
}

// constraintFields maps named constraints (postgres reports names, not columns).
var constraintFields = map[string]string{
	"users_email_address_key": "emailAddress",
	"courses_user_id_fkey":    "userId",
}

// sqliteConstraintRe matches e.g. "UNIQUE constraint failed: users.email_address".
var sqliteConstraintRe = regexp.MustCompile(`(UNIQUE|NOT NULL|FOREIGN KEY|CHECK) constraint failed(?::\s*([\w.]+))?`)

// asConstraintError converts driver constraint failures into *ConstraintError.
// It returns nil when err is not a constraint failure.
func asConstraintError(err error) *ConstraintError {
	if err == nil {
		return nil
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		m := sqliteConstraintRe.FindStringSubmatch(liteErr.Error())
		if m == nil {
			return &ConstraintError{Messages: []string{"request violates a data constraint"}, Err: err}
		}
		field := m[2]
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return &ConstraintError{Messages: []string{constraintMessage(m[1], fieldName(field))}, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		field := fieldName(pgErr.ColumnName)
		if f, ok := constraintFields[pgErr.ConstraintName]; ok {
			field = f
		}
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &ConstraintError{Messages: []string{constraintMessage("UNIQUE", field)}, Err: err}
		case pgerrcode.NotNullViolation:
			return &ConstraintError{Messages: []string{constraintMessage("NOT NULL", field)}, Err: err}
		case pgerrcode.ForeignKeyViolation:
			return &ConstraintError{Messages: []string{constraintMessage("FOREIGN KEY", field)}, Err: err}
		case pgerrcode.CheckViolation:
			return &ConstraintError{Messages: []string{constraintMessage("CHECK", field)}, Err: err}
		}
	}

	return nil
}

func fieldName(column string) string {
	if f, ok := columnFields[column]; ok {
		return f
	}
	return column
}

func constraintMessage(kind, field string) string {
	if field == "" {
		field = "value"
	}
	switch kind {
	case "UNIQUE":
		return field + " must be unique"
	case "NOT NULL":
		return field + " cannot be null"
	case "FOREIGN KEY":
		return field + " must reference an existing record"
	default:
		return field + " is not valid"
	}
}
