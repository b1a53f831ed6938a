package delivery

import "errors"

var (
	ErrDeliveryNotFound      = errors.New("delivery not found")
	ErrDeliveryAlreadyPriced = errors.New("delivery already priced")
)
