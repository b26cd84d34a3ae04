// Configuration is loaded from a yaml file placed on the server and validated
// before the service starts.

package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type (
	Application struct {
		Service  ServiceConfig  `yaml:"service"`
		Server   ServerConfig   `yaml:"server"`
		Security SecurityConfig `yaml:"security"`
		Logging  LoggingConfig  `yaml:"logging"`
	}

	// ServiceConfig contains the downstream services by name, mapped to their base url
	ServiceConfig struct {
		Name        string            `yaml:"name"`
		Downstreams map[string]string `yaml:"downstreams"`
	}

	ServerConfig struct {
		BaseAddress  string `yaml:"address"`
		Port         int    `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	}

	SecurityConfig struct {
		Fixed FixedTokenConfig    `yaml:"fixed_token"`
		Oidc  OpenIdConnectConfig `yaml:"oidc"`
		Cors  CorsConfig          `yaml:"cors"`
	}

	FixedTokenConfig struct {
		Api string `yaml:"api"` // shared-secret for server-to-server backend authentication
	}

	OpenIdConnectConfig struct {
		TokenCookieName    string   `yaml:"token_cookie_name"`     // optional, if set, tokens will also be read from this cookie
		TokenPublicKeysPEM []string `yaml:"token_public_keys_PEM"` // a list of public RSA keys in PEM format
	}

	CorsConfig struct {
		DisableCors bool   `yaml:"disable"`
		AllowOrigin string `yaml:"allow_origin"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
		Style    string `yaml:"style"`
	}
)

const (
	StylePlain = "plain"
	StyleJson  = "json"
)

func UnmarshalFromYamlConfiguration(file io.Reader) (*Application, error) {
	d := yaml.NewDecoder(file)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// LoadFromFile reads and validates the configuration in one go.
func LoadFromFile(filename string, logFunc func(format string, v ...interface{})) (*Application, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	conf, err := UnmarshalFromYamlConfiguration(file)
	if err != nil {
		return nil, err
	}

	if err := Validate(conf, logFunc); err != nil {
		return nil, err
	}

	return conf, nil
}
