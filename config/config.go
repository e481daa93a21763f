package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/s3h4n/DL-Sorter/internal"
)

type Config struct {
	SourceDir string `mapstructure:"source_dir"`
	RulesFile string `mapstructure:"rules_file"`
	Logging   struct {
		Level string
		File  string
	}
	Journal struct {
		Enabled bool
		Path    string
	}
	Performance struct {
		Workers int
	}
}

// Load 读取配置文件；path 为空时按默认搜索路径查找，找不到配置文件时使用默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath("$HOME/.dl-sorter")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/dl-sorter")
	}

	v.SetEnvPrefix("DL_SORTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("source_dir", "")
	v.SetDefault("rules_file", internal.DefaultRulesFile)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", internal.DefaultJournalPath)
	v.SetDefault("performance.workers", internal.DefaultWorkers)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &internal.OpError{
				Op:   "config.load",
				Kind: internal.KindConfiguration,
				Path: path,
				Err:  err,
			}
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, &internal.OpError{
			Op:   "config.load",
			Kind: internal.KindConfiguration,
			Path: v.ConfigFileUsed(),
			Err:  err,
		}
	}

	if loaded.Performance.Workers <= 0 {
		loaded.Performance.Workers = internal.DefaultWorkers
	}

	return &loaded, nil
}
