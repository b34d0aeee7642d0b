package providers

import (
	"fmt"
	"path/filepath"
	"sld/internal/structures"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "SLD_LOG_LEVEL")
	viper.BindEnv("redis.addr", "SLD_REDIS_ADDR")
	viper.BindEnv("redis.password", "SLD_REDIS_PASSWORD")
	viper.BindEnv("reset.interval", "SLD_RESET_INTERVAL")
	viper.BindEnv("notify.announceURL", "SLD_ANNOUNCE_URL")
	viper.BindEnv("notify.notifyURL", "SLD_NOTIFY_URL")
	viper.BindEnv("cache.enabled", "SLD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "SLD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if conf.Reset.ResultTTL <= 0 {
		conf.Reset.ResultTTL = 30 * 24 * time.Hour
	}
	if conf.Notify.Timeout <= 0 {
		conf.Notify.Timeout = 10 * time.Second
	}
	if conf.Cache.TTL <= 0 {
		conf.Cache.TTL = 5 * time.Second
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "SimpleLeaderboardDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
