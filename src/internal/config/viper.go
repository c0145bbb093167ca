package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads config.json from the working directory; every key can be
// overridden by environment (dots become underscores).
func NewViper() *viper.Viper {
	config := viper.New()
	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal config file error: %w", err))
		}
	}

	return config
}
