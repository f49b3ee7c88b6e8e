package runner

import (
	"strings"

	"github.com/pkg/errors"
)

// Parses "KEY=VALUE" entries into an environment map.
//
// Later entries override earlier ones. The value may contain "=" and may be
// empty. An entry without "=" or with an empty key fails with
// [ErrInvalidEnv].
func ParseEnv(entries []string) (map[string]string, error) {
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			return nil, errors.Wrapf(ErrInvalidEnv, "%q", entry)
		}
		env[k] = v
	}
	return env, nil
}
