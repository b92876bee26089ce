package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrInvalidChannel     = errors.New("channel_id must be set")
	ErrInvalidMeterPeriod = errors.New("meter_period must be positive")
)

type Config struct {
	Mode        string        `mapstructure:"mode"`
	ServerURL   string        `mapstructure:"server_url"`
	ChannelID   uint64        `mapstructure:"channel_id"`
	MeterPeriod time.Duration `mapstructure:"meter_period"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFile     string        `mapstructure:"log_file"`
	HTTPAddr    string        `mapstructure:"http_addr"`
	STUNURL     string        `mapstructure:"stun_url"`
	ReadLimit   int64         `mapstructure:"read_limit"`
	PingPeriod  time.Duration `mapstructure:"ping_period"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "release")
	v.SetDefault("server_url", "ws://localhost:8080/api/ws/signal")
	v.SetDefault("channel_id", 0)
	v.SetDefault("meter_period", "40ms")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "voicepanel.log")
	v.SetDefault("http_addr", "")
	v.SetDefault("stun_url", "stun:stun.l.google.com:19302")
	v.SetDefault("read_limit", 32768)
	v.SetDefault("ping_period", "54s")
}

// Load reads config/config.<CONFIG_ENV>.yaml, then VOICEPANEL_* environment
// variables, then any flags in fs. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.SetEnvPrefix("voicepanel")
	v.AutomaticEnv()
	setDefaults(v)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		log.Debug().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Debug().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ChannelID == 0 {
		return ErrInvalidChannel
	}
	if c.MeterPeriod <= 0 {
		return ErrInvalidMeterPeriod
	}
	return nil
}
