package toolbase

// ExitError carries the process exit code a failure should map to. The
// binary's main translates it with os.Exit; Run never exits the process
// itself.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}
