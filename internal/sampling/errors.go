package sampling

import "errors"

var (
	ErrInvalidLevel        = errors.New("invalid inspection level")
	ErrUnknownCode         = errors.New("unknown code letter")
	ErrLotSizeBelowMinimum = errors.New("lot size below minimum")
)
