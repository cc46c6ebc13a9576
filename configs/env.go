package configs

import (
	"github.com/spf13/viper"
)

const DefaultContextPath = "/go-weather"

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	PropertiesFile  string
}

var Env = &EnvConfig{ApplicationName: "go-weather", ContextPath: DefaultContextPath}

// LoadEnv reads the process environment. Call it after any .env file has been applied.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "go-weather"),
		ContextPath:     getStringOrDefault(v, "CONTEXT_PATH", DefaultContextPath),
		PropertiesFile:  getStringOrDefault(v, "PROPERTIES_FILE_PATH", "configs/application.yml"),
	}
	return Env
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
