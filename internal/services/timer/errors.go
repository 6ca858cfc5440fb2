package timer

// TimerError is a custom error type for timer errors
type TimerError string

// Error implements the error interface
func (e TimerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       TimerError = "config cannot be nil"
	ErrNilNotifier     TimerError = "notifier cannot be nil"
	ErrEmptyUserID     TimerError = "user ID cannot be empty"
	ErrEmptyDuration   TimerError = "duration cannot be empty"
	ErrInvalidDuration TimerError = "duration must be a positive minutes:seconds value"
	ErrDurationTooLong TimerError = "duration is longer than the maximum"
)
