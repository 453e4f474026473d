package dialogue

// InvalidInputError reports a required input that failed the hard
// validation tier (empty or otherwise unusable). Malformed content inside
// otherwise valid input never produces this error; such elements are
// skipped with a diagnostic and processing continues.
type InvalidInputError struct {
	Op     string // the converter that rejected the input
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Op + ": invalid input: " + e.Reason
}
