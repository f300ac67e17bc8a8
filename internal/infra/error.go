package infra

import (
	"errors"

	"storefront/internal/pkg/errs"
)

type AdapterErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound        AdapterErrorKind = "NOT_FOUND"
	KindIOFailure       AdapterErrorKind = "IO_FAILURE"
	KindUpstreamFailure AdapterErrorKind = "UPSTREAM_FAILURE"
	KindCorruptSnapshot AdapterErrorKind = "CORRUPT_SNAPSHOT"
)

type AdapterError struct {
	Kind AdapterErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e AdapterError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e AdapterError) Unwrap() error {
	return e.err
}

func WrapAdapterErr(msg string, err error, kind AdapterErrorKind) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return AdapterError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind AdapterErrorKind) bool {
	var e AdapterError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
