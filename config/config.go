package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teofils1/supply-chain/pkg/otellib"
)

// Config is the root configuration of the pipeline.
type Config struct {
	Server       ServerConfig         `mapstructure:"server"`
	Log          LogConfig            `mapstructure:"log"`
	MySQL        MySQLConfig          `mapstructure:"mysql"`
	Jaeger       otellib.JaegerConfig `mapstructure:"jaeger"`
	Notification NotificationConfig   `mapstructure:"notification"`
	Anchoring    AnchoringConfig      `mapstructure:"anchoring"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String returns host:port for dialing
func (c ListenConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ListenString returns :port for binding
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ListenConfig `mapstructure:"grpc"`
	HTTP ListenConfig `mapstructure:"http"`
}

// LogConfig ...
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Production bool   `mapstructure:"production"`
}

// NotificationConfig controls dispatch, delivery and escalation.
type NotificationConfig struct {
	AlertSeverities    []string `mapstructure:"alert_severities"`
	AlwaysNotifyEvents []string `mapstructure:"always_notify_events"`

	IntakeQueueSize int `mapstructure:"intake_queue_size"`
	NumWorkers      int `mapstructure:"num_workers"`
	WorkerQueueSize int `mapstructure:"worker_queue_size"`

	MaxAttempts    int           `mapstructure:"max_attempts"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay"`

	EscalationTimeout time.Duration `mapstructure:"escalation_timeout"`
	SweepInterval     time.Duration `mapstructure:"sweep_interval"`

	RuleCacheExpireSeconds int `mapstructure:"rule_cache_expire_seconds"`
}

// AnchoringConfig ...
type AnchoringConfig struct {
	Network   string        `mapstructure:"network"`
	BatchSize int           `mapstructure:"batch_size"`
	MaxAge    time.Duration `mapstructure:"max_age"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("notification.alert_severities", []string{"high", "critical"})
	v.SetDefault("notification.always_notify_events",
		[]string{"temperature_alert", "damaged", "recalled", "error"})
	v.SetDefault("notification.intake_queue_size", 1024)
	v.SetDefault("notification.num_workers", 8)
	v.SetDefault("notification.worker_queue_size", 64)
	v.SetDefault("notification.max_attempts", 3)
	v.SetDefault("notification.retry_base_delay", time.Second)
	v.SetDefault("notification.escalation_timeout", 30*time.Minute)
	v.SetDefault("notification.sweep_interval", 5*time.Minute)
	v.SetDefault("notification.rule_cache_expire_seconds", 30)

	v.SetDefault("anchoring.network", "mock-testnet")
	v.SetDefault("anchoring.batch_size", 10)
	v.SetDefault("anchoring.max_age", 24*time.Hour)
}

func loadConfigFile(v *viper.Viper, name string, dirs ...string) Config {
	v.SetConfigName(name)
	v.SetConfigType("yml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory.
func Load() Config {
	return loadConfigFile(viper.New(), "config", ".")
}

// LoadTestConfig reads config_test.yml from the repository root.
func LoadTestConfig(rootDir string) Config {
	return loadConfigFile(viper.New(), "config_test", path.Join(rootDir))
}

// NewLogger builds the zap logger from config.
func NewLogger(conf LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		if err := level.Set(conf.Level); err != nil {
			panic(err)
		}
	}

	var zapConf zap.Config
	if conf.Production {
		zapConf = zap.NewProductionConfig()
	} else {
		zapConf = zap.NewDevelopmentConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
