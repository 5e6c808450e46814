package validator

import "github.com/formkit-go/formschema/config"

// NewRegistryFromConfig builds a schema registry from environment-driven
// configuration: validators it creates default to cfg.DefaultLocale, strict
// registration is honored and, when cfg.SchemaDir is set, every schema file
// in that directory is loaded.
func NewRegistryFromConfig(cfg config.Validation) (*Registry, error) {
	var opts []RegistryOption
	if cfg.Strict {
		opts = append(opts, WithStrictSchemas())
	}
	if cfg.DefaultLocale != "" {
		opts = append(opts, WithEngineOptions(WithDefaultLocale(cfg.DefaultLocale)))
	}

	r := NewRegistry(opts...)
	if cfg.SchemaDir != "" {
		if err := r.LoadDir(cfg.SchemaDir); err != nil {
			return nil, err
		}
	}
	return r, nil
}
