package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. COPYSOCIAL_SERVER_ADDR.
const EnvPrefix = "COPYSOCIAL"

type Config struct {
	// SiteTitle replaces the content title when set.
	SiteTitle  string `mapstructure:"siteTitle"`
	BaseURL    string `mapstructure:"baseURL"`
	OutputDir  string `mapstructure:"outputDir"`
	ContentDir string `mapstructure:"contentDir"`
	StaticDir  string `mapstructure:"staticDir"`

	Server   ServerConfig   `mapstructure:"server"`
	Device   DeviceConfig   `mapstructure:"device"`
	Carousel CarouselConfig `mapstructure:"carousel"`
	Submit   SubmitConfig   `mapstructure:"submit"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"`
}

type DeviceConfig struct {
	// Breakpoint is the viewport width (CSS pixels) below which a visitor is mobile.
	Breakpoint int `mapstructure:"breakpoint"`
}

type CarouselConfig struct {
	Interval       time.Duration `mapstructure:"interval"`
	Transition     time.Duration `mapstructure:"transition"`
	SwipeThreshold int           `mapstructure:"swipeThreshold"`
}

type SubmitConfig struct {
	Delay time.Duration `mapstructure:"delay"`
	// Fail makes the mock submitter reject every submission.
	Fail bool `mapstructure:"fail"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("siteTitle", "")
	v.SetDefault("baseURL", "")
	v.SetDefault("outputDir", "public")
	v.SetDefault("contentDir", "content")
	v.SetDefault("staticDir", "static")

	v.SetDefault("server.addr", ":1313")
	v.SetDefault("server.readTimeout", 10*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)

	v.SetDefault("device.breakpoint", 768)

	v.SetDefault("carousel.interval", 6*time.Second)
	v.SetDefault("carousel.transition", 500*time.Millisecond)
	v.SetDefault("carousel.swipeThreshold", 50)

	v.SetDefault("submit.delay", 1500*time.Millisecond)
	v.SetDefault("submit.fail", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads configuration from cfgFile (or ./config.yaml when empty) and the
// environment. A missing default config file is not an error; found reports
// whether a file was read.
func Load(cfgFile string) (cfg Config, found bool, err error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return cfg, false, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		found = true
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, found, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, found, err
	}
	return cfg, found, nil
}

// Validate rejects values the site cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Device.Breakpoint <= 0:
		return fmt.Errorf("device.breakpoint must be positive, got %d", c.Device.Breakpoint)
	case c.Carousel.Interval <= 0:
		return fmt.Errorf("carousel.interval must be positive, got %s", c.Carousel.Interval)
	case c.Carousel.Transition <= 0:
		return fmt.Errorf("carousel.transition must be positive, got %s", c.Carousel.Transition)
	case c.Carousel.SwipeThreshold <= 0:
		return fmt.Errorf("carousel.swipeThreshold must be positive, got %d", c.Carousel.SwipeThreshold)
	case c.Submit.Delay < 0:
		return fmt.Errorf("submit.delay must not be negative, got %s", c.Submit.Delay)
	case c.OutputDir == "":
		return errors.New("outputDir must not be empty")
	}
	return nil
}
