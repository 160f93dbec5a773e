package knotconfigs

import "errors"

var ErrInvalidConfig = errors.New("invalid config")
