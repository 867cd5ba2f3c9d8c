package advanced

import "github.com/pkg/errors"

// Threading errors up and down the recursion would add noise to code that can
// only fail on bad input. Instead, precondition violations panic with an
// AnalyzeError, and the public API recovers to convert to an error.

// Returned (wrapped with the offending index) when a point has a NaN or
// infinite coordinate.
var ErrNonFinitePoint = errors.New("point has a non-finite coordinate")

type AnalyzeError struct {
	error
}

func (e AnalyzeError) Unwrap() error { return e.error }

// Panic with an AnalyzeError.
func fatalf(format string, args ...interface{}) {
	panic(AnalyzeError{errors.Errorf(format, args...)})
}

// Panic with an AnalyzeError wrapping err.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(AnalyzeError{errors.Wrapf(err, format, args...)})
}

// Convert a recovered AnalyzeError into an error. Any other panic is re-raised.
func HandleAnalyzePanicRecover(r interface{}) error {
	if r != nil {
		if analyzeError, ok := r.(AnalyzeError); ok {
			return analyzeError.error
		}
		panic(r)
	}
	return nil
}

func validatePoints(points PointList) {
	for i, p := range points {
		if !p.IsFinite() {
			fatalWrapf(ErrNonFinitePoint, "point %d %v", i, p)
		}
	}
}
