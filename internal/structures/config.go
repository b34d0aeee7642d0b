package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" validate:"required"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type ResetConfig struct {
	Interval             string        `yaml:"interval" validate:"required|in:daily,weekly,monthly,custom"`
	CustomHours          int           `yaml:"customHours"`
	MaxHistoricalPeriods int           `yaml:"maxHistoricalPeriods" validate:"required|min:1"`
	TopPlayersCount      int           `yaml:"topPlayersCount" validate:"required|min:1"`
	AutoAnnounce         bool          `yaml:"autoAnnounce"`
	Notifications        bool          `yaml:"notifications"`
	ResultTTL            time.Duration `yaml:"resultTTL"`
}

type NotifyConfig struct {
	AnnounceURL string        `yaml:"announceURL"`
	NotifyURL   string        `yaml:"notifyURL"`
	Timeout     time.Duration `yaml:"timeout"`
}

type ArchiveConfig struct {
	Dir     string        `yaml:"dir"`
	ColdTTL time.Duration `yaml:"coldTTL"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Redis     RedisConfig   `yaml:"redis"`
	Reset     ResetConfig   `yaml:"reset"`
	Notify    NotifyConfig  `yaml:"notify"`
	Archive   ArchiveConfig `yaml:"archive"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
