package services

import "fmt"

// PartialFailure reports a multi-step operation whose first step committed
// but whose follow-up did not. The caller sees what succeeded so it can
// tell the user the true state instead of rolling back silently.
type PartialFailure struct {
	Completed string
	Failed    string
	Err       error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("%s succeeded but %s failed: %v", e.Completed, e.Failed, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}
