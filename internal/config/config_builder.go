package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers. Non-zero fields of a later
// layer override earlier ones; errors from every layer are joined.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) add(source string, load func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", func() (*StructuredConfig, error) {
		cfg := &StructuredConfig{}
		return cfg, parseEnv(cfg)
	})
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add("flags", func() (*StructuredConfig, error) {
		return parseFlags(args)
	})
}

// withJSON loads the file named by the last layer that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add("json", func() (*StructuredConfig, error) {
		return parseJSON(path)
	})
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}
