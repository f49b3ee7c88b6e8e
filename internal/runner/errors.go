package runner

import "github.com/pkg/errors"

var (
	ErrCommandFailed = errors.New("command failed")
	ErrInvalidEnv    = errors.New("invalid environment entry")
)
