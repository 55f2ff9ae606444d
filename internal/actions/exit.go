package actions

import "fmt"

// ExitError reports a non-zero exit status the command must terminate with.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitStatus maps a process exit status to one usable with os.Exit. Processes
// killed by a signal report -1.
func exitStatus(code int) error {
	switch {
	case code == 0:
		return nil
	case code < 0 || code > 255:
		return &ExitError{Code: 255}
	default:
		return &ExitError{Code: code}
	}
}
