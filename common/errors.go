package common

import "github.com/cockroachdb/errors"

var ErrorInvalidValue = errors.New("invalid value")

// Input errors for the k-factor functions. Each one is also ErrorInvalidValue.
var (
	ErrorInvalidProbability   = errors.Mark(errors.New("probability must be between 0 and 1"), ErrorInvalidValue)
	ErrorInvalidFailureCount  = errors.Mark(errors.New("failure count must be a non-negative integer"), ErrorInvalidValue)
	ErrorInvalidSampleSize    = errors.Mark(errors.New("sample size must be a positive integer"), ErrorInvalidValue)
	ErrorConflictingCensoring = errors.Mark(errors.New("time and failure cannot both be true"), ErrorInvalidValue)
	ErrorZeroFailureRegime    = errors.Mark(errors.New("r == 0 requires time == true and failure == false"), ErrorInvalidValue)
)
