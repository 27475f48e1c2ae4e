// Package config loads flat, env-bound settings structs through Viper.
// Field names map to environment variables via their mapstructure tag:
// with prefix "BLAZON", the field tagged `mapstructure:"dry_run"` binds to
// BLAZON_DRY_RUN.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

type (
	// Option modifies load options.
	Option func(opts *Options)

	// Options holds the load options.
	Options struct {
		prefix   string
		defaults map[string]any
	}
)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// WithDefault sets the default value for one settings key.
func WithDefault(key string, value any) Option {
	return func(opts *Options) {
		if opts.defaults == nil {
			opts.defaults = make(map[string]any)
		}
		opts.defaults[key] = value
	}
}

// Load builds a settings struct of type T from the environment. T must be a
// flat struct; nested structs are not bound.
func Load[T any](opts ...Option) (*T, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range options.defaults {
		v.SetDefault(key, value)
	}

	var settings T
	if err := bindFields(v, reflect.TypeOf(settings)); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to unmarshal settings: %w", err)
	}

	return &settings, nil
}

// bindFields binds every field key explicitly, as AutomaticEnv alone does
// not surface env-only keys through Unmarshal.
func bindFields(v *viper.Viper, t reflect.Type) error {
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("settings type must be a struct, got %s", t)
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key, ok := field.Tag.Lookup("mapstructure")
		if !ok {
			key = field.Name
		}
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("unable to bind settings key %q: %w", key, err)
		}
	}
	return nil
}
