package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

const SecretPasswordEnv = "SECRET_SAUCE_PASSWORD"

var ErrMissingSecret = errors.New(SecretPasswordEnv + " environment variable is not set")

type SecretReader interface {
	ReadSecret(ctx context.Context, prompt string) (string, error)
}

// SecretSource resolves the sauce password: the configured value first, then
// one interactive prompt.
type SecretSource struct {
	preset string
	in     SecretReader
	log    *zap.Logger
}

func NewSecretSource(preset string, in SecretReader, log *zap.Logger) *SecretSource {
	return &SecretSource{preset: preset, in: in, log: log}
}

func (s *SecretSource) Password(ctx context.Context) (string, error) {
	if s.preset != "" {
		return s.preset, nil
	}
	pwd, err := s.in.ReadSecret(ctx, "Enter " + SecretPasswordEnv + ": ")
	if err != nil {
		return "", err
	}
	pwd = strings.TrimSpace(pwd)
	if pwd == "" {
		return "", ErrMissingSecret
	}
	s.log.Debug("secret sauce password read from prompt")
	return pwd, nil
}

// MaskSecret keeps the first character only. Never log the raw password.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return string(r[0]) + strings.Repeat("*", len(r)-1)
}
