package filter

import "errors"

var (
	// ErrUnknownFilter is returned by New for a name no filter is registered under.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrBadSignature is returned for a TeX command signature that is not a
	// string of o, O, p and P.
	ErrBadSignature = errors.New("bad command signature")

	// ErrBadDelimiter is returned for a context delimiter pair without an
	// opening delimiter.
	ErrBadDelimiter = errors.New("bad delimiter pair")
)
