package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field returns an error instance that wraps the original error with the name
// of the attribute it was produced for. It returns nil if provided error is
// nil.
//
// Use Go naming for the field name, for example Owner or Payment.Ticker.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}

	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}

	return &fieldError{
		parent: err,
		field:  fieldName,
		desc:   description,
	}
}

// AppendField is a shortcut to club together errors with a given field error.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

// Cause implements the causer interface.
func (err *fieldError) Cause() error {
	return err.parent
}

// Field returns the name of the attribute this error is for.
func (err *fieldError) Field() string {
	return err.field
}

// FieldErrors returns all errors that were created for the given field name.
func FieldErrors(err error, fieldName string) []error {
	if isNilErr(err) {
		return nil
	}

	var res []error
	for {
		if err == nil {
			return res
		}

		if f, ok := err.(fielder); ok {
			if f.Field() == fieldName {
				return append(res, err)
			}
		}

		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				res = append(res, FieldErrors(e, fieldName)...)
			}
			return res
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return res
		}
	}
}

type fielder interface {
	Field() string
}

// Append clubs together all provided errors. Nil values are ignored. If all
// errors are nil, nil is returned. A single non nil error is returned as it
// is.
func Append(errs ...error) error {
	var flat []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if u, ok := e.(*multiErr); ok {
			flat = append(flat, u.errs...)
			continue
		}
		flat = append(flat, e)
	}

	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return &multiErr{errs: flat}
	}
}

// multiErr groups errors, for example all validation failures of a model.
// It reports the code of the first error.
type multiErr struct {
	errs []error
}

func (m *multiErr) Error() string {
	msg := fmt.Sprintf("%d errors occurred:", len(m.errs))
	for _, e := range m.errs {
		msg += "\n\t* " + e.Error()
	}
	return msg
}

// Unpack returns all grouped errors.
func (m *multiErr) Unpack() []error {
	return m.errs
}

// ABCICode returns the code of the first grouped error.
func (m *multiErr) ABCICode() uint32 {
	return abciCode(m.errs[0])
}

type unpacker interface {
	Unpack() []error
}
