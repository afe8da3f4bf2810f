package domain

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrAccountNotSet      = errors.New("github account name not configured")
	ErrCatalogUnavailable = errors.New("project catalog unavailable")
)
