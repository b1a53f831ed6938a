package factory

import "errors"

var (
	ErrFactoryNotFound           = errors.New("factory not found")
	ErrFactoriesAlreadySeeded    = errors.New("factories already initialized")
	ErrNoActiveFactoryConfigured = errors.New("no active factory configured")
)
