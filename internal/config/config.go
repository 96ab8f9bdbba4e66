package config

import (
	"strings"
	"time"

	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Init wires defaults and env overrides (AGRICONNECT_API_BASE_URL etc.) into
// the process-wide viper instance. An absent config file is not an error.
func Init() error {
	viper.SetDefault(constants.ViperAPIBaseURL, "http://localhost:5000/api")
	viper.SetDefault(constants.ViperHTTPTimeout, 15*time.Second)
	viper.SetDefault(constants.ViperPollInterval, 30*time.Second)
	viper.SetDefault(constants.ViperSessionPath, ".agriconnect/session.json")
	viper.SetDefault(constants.ViperMockAddr, ":5000")
	viper.SetDefault(constants.ViperJWTSecret, "dev-secret-change-me")

	viper.SetEnvPrefix("agriconnect")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("agriconnect")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.agriconnect")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func BaseURL() string            { return viper.GetString(constants.ViperAPIBaseURL) }
func HTTPTimeout() time.Duration { return viper.GetDuration(constants.ViperHTTPTimeout) }
func PollInterval() time.Duration {
	return viper.GetDuration(constants.ViperPollInterval)
}
func SessionPath() string { return viper.GetString(constants.ViperSessionPath) }
func MockAddr() string    { return viper.GetString(constants.ViperMockAddr) }
func JWTSecret() string   { return viper.GetString(constants.ViperJWTSecret) }
