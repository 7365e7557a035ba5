package generator

import "errors"

var (
	// ErrUnsupportedBitWidth reports a field bit width of 0 or more than 64.
	// Generation aborts; no partial output is produced.
	ErrUnsupportedBitWidth = errors.New("unsupported bit width")

	// ErrDerivedChain reports a peripheral derived from another derived
	// peripheral. The input model must already be flattened to one level of
	// derivation.
	ErrDerivedChain = errors.New("peripheral derived from a derived peripheral")

	// ErrConfigLoadFailed reports an unreadable or unparsable configuration
	// file.
	ErrConfigLoadFailed = errors.New("failed to load generator configuration")
)
