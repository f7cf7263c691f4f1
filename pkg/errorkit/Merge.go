package errorkit

import "strings"

// Merge combines the non nil errors into one.
// It returns nil when there is none, and the error itself when there is only one.
func Merge(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return merged(nonNil)
	}
}

// Finish merges the result of blk into the error a deferred call returns.
//
//	defer errorkit.Finish(&rErr, f.Close)
func Finish(rErr *error, blk func() error) {
	*rErr = Merge(*rErr, blk())
}

// merged keeps the order of the errors, the first one is the primary failure.
type merged []error

func (errs merged) Error() string {
	var b strings.Builder
	for i, err := range errs {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func (errs merged) Unwrap() []error {
	return errs
}
