// Package internal provides the internal implementation for settingsx.
package internal

import (
	"strings"

	"github.com/caarlos0/env/v11"

	"go.fernwave.dev/settingsx/core/errors"
)

// Bind decodes a resolved snapshot into target, a pointer to a struct with
// `env`/`envDefault` tags. Snapshot keys are normalized to environment
// variable style before lookup, so "server.http.port" binds to the tag
// "SERVER_HTTP_PORT".
func Bind(snapshot map[string]string, target any) error {
	if target == nil {
		return errors.New(errors.CodeInvalidArgument, "bind: target cannot be nil")
	}

	environment := make(map[string]string, len(snapshot))
	for k, v := range snapshot {
		environment[EnvKey(k)] = v
	}

	if err := env.ParseWithOptions(target, env.Options{Environment: environment}); err != nil {
		return errors.Wrap(errors.CodeInvalidArgument, "bind", err)
	}
	return nil
}

// EnvKey converts a dot-separated snapshot key into environment variable
// style: uppercase with dots and dashes replaced by underscores.
func EnvKey(key string) string {
	key = strings.ToUpper(key)
	key = strings.ReplaceAll(key, ".", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}
