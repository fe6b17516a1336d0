package index

import "errors"

// ErrDuplicateKey is returned by a Builder's Insert when the normalized
// key already maps to an existing term. The build does not silently
// merge or overwrite — the caller decides whether to skip, bump the
// existing frequency, or treat it as fatal.
var ErrDuplicateKey = errors.New("index: key already exists")

// ErrInvalidFrequency is returned when a frequency outside [0, 1] is
// inserted. Frequencies are a share of corpus mass, not a raw count.
var ErrInvalidFrequency = errors.New("index: frequency must be in [0, 1]")
