// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by tools that call public
// endpoints.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "toolshed/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// UnitsConfig holds settings for the unit converter.
type UnitsConfig struct {
	// Precision is the number of fractional digits kept before trailing
	// zeros are stripped (default 6).
	Precision int `json:"precision" yaml:"precision" mapstructure:"precision"`
}

// PasswordConfig holds the default password generator options.
type PasswordConfig struct {
	Length    int  `json:"length" yaml:"length" mapstructure:"length"`
	Uppercase bool `json:"uppercase" yaml:"uppercase" mapstructure:"uppercase"`
	Lowercase bool `json:"lowercase" yaml:"lowercase" mapstructure:"lowercase"`
	Numbers   bool `json:"numbers" yaml:"numbers" mapstructure:"numbers"`
	Symbols   bool `json:"symbols" yaml:"symbols" mapstructure:"symbols"`
}

// ImageConfig holds settings for the QR-code and barcode tools.
type ImageConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// QREndpoint is the QR rendering service (default api.qrserver.com).
	QREndpoint string `json:"qr_endpoint" yaml:"qr_endpoint" mapstructure:"qr_endpoint"`

	// BarcodeEndpoint is the barcode rendering service (default
	// barcode.tec-it.com).
	BarcodeEndpoint string `json:"barcode_endpoint" yaml:"barcode_endpoint" mapstructure:"barcode_endpoint"`

	// QRSize is the default QR image edge in pixels (default 300).
	QRSize int `json:"qr_size" yaml:"qr_size" mapstructure:"qr_size"`

	// MaxRetries bounds retries on throttled responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// StoreConfig locates the local database for palettes and short links.
type StoreConfig struct {
	// Dir is the directory holding toolshed.db and exports.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// ShortenerConfig holds settings for the URL shortener.
type ShortenerConfig struct {
	// BaseURL prefixes generated short links, e.g. "https://tool.sh".
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// Config groups every tool's configuration.
type Config struct {
	Units     UnitsConfig     `json:"units" yaml:"units" mapstructure:"units"`
	Password  PasswordConfig  `json:"password" yaml:"password" mapstructure:"password"`
	Image     ImageConfig     `json:"image" yaml:"image" mapstructure:"image"`
	Store     StoreConfig     `json:"store" yaml:"store" mapstructure:"store"`
	Shortener ShortenerConfig `json:"shortener" yaml:"shortener" mapstructure:"shortener"`
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Units: UnitsConfig{Precision: 6},
		Password: PasswordConfig{
			Length:    16,
			Uppercase: true,
			Lowercase: true,
			Numbers:   true,
			Symbols:   true,
		},
		Image: ImageConfig{
			HTTPConfig: HTTPConfig{Timeout: 30 * time.Second, UserAgent: "toolshed/0.1"},
			QRSize:     300,
			MaxRetries: 3,
		},
		Store:     StoreConfig{Dir: ".toolshed"},
		Shortener: ShortenerConfig{BaseURL: "http://localhost:8080"},
	}
}
