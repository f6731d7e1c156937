// Package sqlerr translates Postgres driver errors into application errors.
//
// Raw pgconn errors carry a SQLSTATE and constraint metadata. This package
// maps them onto a small Code enum, and HandleError turns them into
// *errs.HTTPError values that never leak driver text to clients.
package sqlerr

import "fmt"

// Code is a coarse classification of a Postgres SQLSTATE.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	ExclusionViolation        Code = "exclusion_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	QueryCanceled             Code = "query_canceled"
	UndefinedTable            Code = "undefined_table"
	ConnectionFailure         Code = "connection_failure"
)

// sqlStates lists the SQLSTATEs we care about. Anything else is Other.
var sqlStates = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"23P01": ExclusionViolation,
	"22P02": InvalidTextRepresentation,
	"57014": QueryCanceled,
	"42P01": UndefinedTable,
	"08000": ConnectionFailure,
	"08003": ConnectionFailure,
	"08006": ConnectionFailure,
}

// MapCode maps a SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	if code, ok := sqlStates[sqlState]; ok {
		return code
	}
	return Other
}

// Severity mirrors the Postgres severity field.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityUnknown Severity = "UNKNOWN"
)

// MapSeverity normalises the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning, SeverityNotice:
		return Severity(severity)
	default:
		return SeverityUnknown
	}
}

// Error is a driver error converted into our own vocabulary.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
