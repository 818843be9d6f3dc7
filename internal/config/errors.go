package config

import "errors"

// ErrInvalidConfig indicates a configuration skillscand cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")
