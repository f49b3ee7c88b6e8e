package build

import "github.com/pkg/errors"

var (
	ErrInvalidGenerator    = errors.New("invalid generator")
	ErrInvalidBuildType    = errors.New("invalid build type")
	ErrBothSingleConfig    = errors.New("single-config generators cannot build both configurations")
	ErrFileSystemOperation = errors.New("file system operation failed")
	ErrConfigure           = errors.New("cmake project generation failed")
	ErrCompile             = errors.New("cmake build failed")
)
