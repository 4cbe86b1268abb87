// Configuration loading
//
// Layers, lowest to highest precedence: struct defaults (SetDefaults),
// an optional YAML config file, then HLSPARSE_-prefixed environment
// variables. Built on viper, matching the rest of this corpus's
// env+file+flag configuration idiom.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig builds a Config from an optional file at path (skipped if
// path is empty or the file does not exist) layered under environment
// variables, over the defaults SetDefaults fills in for anything left unset.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HLSPARSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper already knows, so each key is bound
	// to its environment variable explicitly.
	for _, key := range []string{
		"parser.max_input_bytes", "parser.strict_header",
		"cache.enabled", "cache.max_size", "cache.shard_size", "cache.ttl",
		"log.level", "log.format", "log.output",
		"metrics.enabled", "metrics.addr",
	} {
		_ = v.BindEnv(key)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	SetDefaults(cfg)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
