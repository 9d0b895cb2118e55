package argsert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

var (
	ErrInvalidEnv = errors.New("invalid argsert environment")
)

// EnvConfig is the environment representation of Options.
type EnvConfig struct {
	Separator string   `env:"ARGSERT_SEPARATOR" envDefault:"|"`
	Any       string   `env:"ARGSERT_ANY" envDefault:"any"`
	Strict    bool     `env:"ARGSERT_STRICT"`
	OnError   string   `env:"ARGSERT_ON_ERROR" envDefault:"throw"`
	Disabled  []string `env:"ARGSERT_DISABLED" envSeparator:","`
	Positions []string `env:"ARGSERT_POSITIONS" envSeparator:","`
	Language  string   `env:"ARGSERT_LANG"`
}

// OptionsFromEnv loads Options from ARGSERT_* environment variables.
//
// ARGSERT_ON_ERROR accepts throw or suppress (also true/false).
// ARGSERT_DISABLED and ARGSERT_POSITIONS are comma separated.
// ARGSERT_LANG is a BCP 47 tag.
func OptionsFromEnv() (Options, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg.Options()
}

// Options converts cfg into Options.
func (cfg EnvConfig) Options() (Options, error) {
	opts := Options{
		Separator: cfg.Separator,
		Any:       cfg.Any,
		Strict:    cfg.Strict,
		Positions: trimAll(cfg.Positions),
		Disabled:  trimAll(cfg.Disabled),
	}

	switch strings.ToLower(strings.TrimSpace(cfg.OnError)) {
	case "", "throw", "true":
		opts.OnError = Throw
	case "suppress", "false":
		opts.OnError = Suppress
	default:
		return Options{}, fmt.Errorf("%w: ARGSERT_ON_ERROR %q", ErrInvalidEnv, cfg.OnError)
	}

	if cfg.Language != "" {
		tag, err := language.Parse(cfg.Language)
		if err != nil {
			return Options{}, fmt.Errorf("%w: ARGSERT_LANG %q: %w", ErrInvalidEnv, cfg.Language, err)
		}
		opts.Language = tag
	}

	return opts, nil
}

func trimAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
