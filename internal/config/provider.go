// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions names the explicit inputs to a configuration load. Zero
// values mean "use the standard lookup".
type LoadOptions struct {
	// ConfigFilePath, when set, loads exactly this file and fails if it
	// is missing or malformed.
	ConfigFilePath string
	// ConfigDirPath, when set, replaces the platform config directory.
	ConfigDirPath string
}

// Provider resolves an effective configuration. The single-method
// interface keeps callers mockable without touching the filesystem.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

// fileProvider is the standard Provider: defaults merged with the
// config file resolved from opts.
type fileProvider struct{}

// NewProvider returns the file-backed configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
