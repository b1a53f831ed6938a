package fertilizer

import "errors"

var (
	ErrObligationNotFound = errors.New("fertilizer obligation not found")
)
