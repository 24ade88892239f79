package errors

import "github.com/pkg/errors"

func WrappedErrEnumerateProcesses(err error) error {
	return errors.WithMessage(err, "enumerate processes")
}

func WrappedErrReadProcessTable(err error) error {
	return errors.WithMessage(err, "read process table")
}

func WrappedErrNewHostReport(err error) error {
	return errors.WithMessage(err, "new host report")
}

func WrappedErrMergeReports(err error) error {
	return errors.WithMessage(err, "merge reports")
}
