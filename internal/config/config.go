// Configuration structure definitions
//
// Defines all configuration options as structured Go types with
// 'default' struct tags consumed by SetDefaults.
//
// Main sections:
// - ParserConfig: input bounds and leniency for the hls parser
// - CacheConfig: result-cache sizing and TTL
// - LogConfig: logging parameters
// - MetricsConfig: telemetry settings
package config

// Config is the root configuration structure, populated from defaults,
// a YAML file, and environment variables, in that order of precedence
// (see LoadConfig).
type Config struct {
	Parser  ParserConfig  `mapstructure:"parser"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ParserConfig bounds and tunes the hls parser's caller-side behavior.
// The parser itself accepts no configuration (it is a pure function of
// its input); these knobs govern what the caller does before and around
// the call.
type ParserConfig struct {
	// MaxInputBytes bounds how much manifest data a caller will read
	// before invoking Parse; the parser itself imposes no limit and has
	// no notion of cancellation, so input size is the only bound.
	MaxInputBytes int64 `mapstructure:"max_input_bytes" default:"10485760"`

	// StrictHeader requires the first non-blank line to be #EXTM3U;
	// when false (the default, matching the parser's own leniency) a
	// missing header is tolerated.
	StrictHeader bool `mapstructure:"strict_header" default:"false"`
}

// CacheConfig configures the in-memory parse-result cache.
type CacheConfig struct {
	Enabled   bool   `mapstructure:"enabled" default:"true"`
	MaxSize   int    `mapstructure:"max_size" default:"10000"`
	ShardSize int    `mapstructure:"shard_size" default:"16"`
	TTL       string `mapstructure:"ttl" default:"5m"`
}

// LogConfig configures the telemetry logger.
type LogConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"console"`
	Output string `mapstructure:"output" default:"stdout"`
}

// MetricsConfig configures the telemetry metrics collector.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" default:"false"`
	Addr    string `mapstructure:"addr" default:":9090"`
}
