package command

import "errors"

// reportedError marks an error that an outputter has already written.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// Reported marks err as already written, so that the root command only sets the exit status.
func Reported(err error) error {
	if err == nil {
		return nil
	}

	return reportedError{err}
}

// IsReported tells whether err was marked by [Reported].
func IsReported(err error) bool {
	var r reportedError

	return errors.As(err, &r)
}
