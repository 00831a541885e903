package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

type configBuilder struct {
	resolver   *Resolver
	selections []*Selection
	err        error
}

func newConfigBuilder(resolver *Resolver) *configBuilder {
	return &configBuilder{
		resolver:   resolver,
		selections: make([]*Selection, 0, 2),
	}
}

// selection merges the collected selections; later non-empty fields win.
func (b *configBuilder) selection() (*Selection, error) {
	sel := new(Selection)
	for _, s := range b.selections {
		if err := mergo.Merge(sel, s, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("%w: error merging selections: %w", ErrConfiguration, err)
		}
	}

	return sel, nil
}

func (b *configBuilder) build() (*Configuration, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sel, err := b.selection()
	if err != nil {
		return nil, err
	}

	b.resolver.logger.Debug().
		Str("environment", sel.Environment).
		Str("config_file", sel.ConfigFile).
		Msg("configuration source selected")

	if sel.ConfigFile != "" {
		return LoadFromFile(sel.ConfigFile, strings.ToLower(sel.Environment))
	}

	return b.resolver.Resolve(sel.Environment)
}

func (b *configBuilder) withEnv() *configBuilder {
	envSel := &Selection{}
	if err := parseEnv(b.resolver.env, envSel); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.selections = append(b.selections, envSel)
	return b
}

func (b *configBuilder) withFlags(fs *flag.FlagSet, args []string) *configBuilder {
	flagSel := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: error parsing flags: %w", ErrInvalidValue, err))
		return b
	}

	b.selections = append(b.selections, flagSel)
	return b
}

// GetConfiguration builds the configuration selected by environment
// variables and command-line flags, in the following priority order (last
// source wins for non-empty fields):
//  1. Environment variables (APP_ENV, CONFIG)
//  2. Command-line flags parsed from args on fs
//
// When a config file is selected, the entry named by the lower-cased
// environment is loaded from it; otherwise the environment is resolved from
// the built-in value sets. Callers may register their own flags on fs first.
func GetConfiguration(fs *flag.FlagSet, args []string, opts ...Option) (*Configuration, error) {
	return newConfigBuilder(NewResolver(opts...)).
		withEnv().
		withFlags(fs, args).
		build()
}
