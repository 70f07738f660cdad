package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// declarationKeys hold the relationship catalog. They are lists of objects,
// which a flat environment variable cannot express.
var declarationKeys = []string{"registry.type_to_type", "registry.type_to_actor"}

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the registry's configuration for profile. Later sources win:
// built-in defaults, then {configDir}/base.yaml, then {configDir}/{profile}.yaml,
// then APP_* environment variables.
//
// The relationship catalog (registry.type_to_type and registry.type_to_actor)
// comes from YAML only; environment variables aimed at it are ignored.
// Scalar settings such as the host client and sync pool can be overridden
// per deployment:
//
//	APP_HOST_BASE_URL            -> host.base_url
//	APP_HOST_RETRY_MAX_ATTEMPTS  -> host.retry.max_attempts
//	APP_REGISTRY_SYNC_ON_STARTUP -> registry.sync_on_startup
//	APP_REGISTRY_SYNC_WORKERS    -> registry.sync_workers
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile rejects profile names that are blank or could escape the
// config directory.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// envKeyMapper maps APP_* variable names onto koanf keys. Underscores are
// ambiguous (APP_REGISTRY_SYNC_WORKERS could be registry.sync.workers), so
// names are first matched against the keys already loaded and only split on
// every underscore when nothing matches. An empty key tells the provider to
// skip the variable, which is how the catalog keys are kept out.
func envKeyMapper(known []string) func(name, value string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		name = strings.ToLower(strings.TrimPrefix(name, envPrefix))

		if targetsDeclarations(name) {
			return "", nil
		}
		if key, ok := byEnvName[name]; ok {
			return key, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}

// targetsDeclarations reports whether a lowercased, unprefixed variable name
// addresses one of the catalog keys or anything beneath it.
func targetsDeclarations(name string) bool {
	for _, decl := range declarationKeys {
		if strings.HasPrefix(name, strings.ReplaceAll(decl, ".", "_")) {
			return true
		}
	}
	return false
}
