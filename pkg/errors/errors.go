package errors

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
)

// ConnectionError means the data source was unreachable or rejected the
// credentials. The operation is aborted, never retried.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("datasource connection failed: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func NewConnectionError(err error) error {
	return &ConnectionError{Err: err}
}

// QueryError means the statement itself was rejected by the engine, e.g. a
// join predicate referencing a column absent from the schema.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query rejected: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

func NewQueryError(err error) error {
	return &QueryError{Err: err}
}

// Postgres error codes that map onto the two error classes above.
const (
	pgUndefinedColumn   = "42703"
	pgUndefinedTable    = "42P01"
	pgSyntaxError       = "42601"
	pgInvalidPassword   = "28P01"
	pgInvalidAuthSpec   = "28000"
	pgInvalidCatalog    = "3D000"
	pgConnectionFailure = "08006"
)

// Classify wraps a driver error into ConnectionError or QueryError where the
// error code allows it, and returns the error unchanged otherwise.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedColumn, pgUndefinedTable, pgSyntaxError:
			return NewQueryError(err)
		case pgInvalidPassword, pgInvalidAuthSpec, pgInvalidCatalog, pgConnectionFailure:
			return NewConnectionError(err)
		}
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) || pgconn.Timeout(err) {
		return NewConnectionError(err)
	}
	return err
}

// HttpError carries a status code and a user-facing message for the
// transport layer.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}
