package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound                 = errors.New("not found")
	ErrInvalidInput             = errors.New("invalid input")
	ErrInvalidConfig            = errors.New("invalid configuration")
	ErrStoreUnavailable         = errors.New("store unavailable")
	ErrUnknownAttribute         = errors.New("unknown attribute")
	ErrEdgeNotFound             = errors.New("edge not found")
	ErrInvalidStructure         = errors.New("invalid structure")
	ErrUnsupportedAttributeType = errors.New("unsupported attribute type")
	ErrDegenerateConditioning   = errors.New("degenerate conditioning")
)
