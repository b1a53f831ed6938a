package bonus

import "errors"

var (
	ErrReceiptNotFound = errors.New("bonus receipt not found")
)
