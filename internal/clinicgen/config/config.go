package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type DatabaseCfg struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type GenerateCfg struct {
	Seed         int64  `mapstructure:"seed"`
	Patients     int    `mapstructure:"patients"`
	Therapists   int    `mapstructure:"therapists"`
	Appointments int    `mapstructure:"appointments"`
	Tasks        int    `mapstructure:"tasks"`
	PastDays     int    `mapstructure:"past_days"`
	FutureDays   int    `mapstructure:"future_days"`
	WeightsFile  string `mapstructure:"weights_file"`
}

type OutputCfg struct {
	SQLFile string `mapstructure:"sql_file"`
}

type LoggingCfg struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Version  string      `mapstructure:"version"`
	Database DatabaseCfg `mapstructure:"database"`
	Generate GenerateCfg `mapstructure:"generate"`
	Output   OutputCfg   `mapstructure:"output"`
	Logging  LoggingCfg  `mapstructure:"logging"`
}

var cfg *Config

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	// set defaults
	v.SetDefault("version", "0.1")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("generate.patients", 500)
	v.SetDefault("generate.therapists", 6)
	v.SetDefault("generate.appointments", 3000)
	v.SetDefault("generate.tasks", 200)
	v.SetDefault("generate.past_days", 180)
	v.SetDefault("generate.future_days", 30)
	v.SetDefault("logging.level", "info")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}
