package mechanics

import "errors"

// Error message string constants
const (
	ErrMsgUnknownConstant = "unknown constant"
	ErrMsgUnknownStat     = "unknown stat"
	ErrMsgInvalidRating   = "invalid rating"
	ErrMsgInvalidEffect   = "invalid effect"
)

var (
	ErrUnknownConstant = errors.New(ErrMsgUnknownConstant)
	ErrUnknownStat     = errors.New(ErrMsgUnknownStat)
	ErrInvalidRating   = errors.New(ErrMsgInvalidRating)
	ErrInvalidEffect   = errors.New(ErrMsgInvalidEffect)
)
