package cli

import "github.com/pkg/errors"

var (
	ErrMissingBuildType = errors.New("no build type selected")
	ErrMissingGenerator = errors.New("no generator selected")
	ErrInvalidArguments = errors.New("invalid arguments")
)
