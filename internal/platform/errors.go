package platform

import (
	"errors"
)

// ErrKeyNotFound is an error returned by key-value storages when key is not stored.
var ErrKeyNotFound = errors.New("key not found")
