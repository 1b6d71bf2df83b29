package transition

import "errors"

var (
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrMissingCourier        = errors.New("missing courier")
	ErrMissingFailureReason  = errors.New("missing failure reason")
	ErrCollectionUnconfirmed = errors.New("outstanding collection not confirmed")
)
