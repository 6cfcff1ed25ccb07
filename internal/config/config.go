package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Configuration provides type-safe access to application settings
type Configuration struct {
	viper *viper.Viper
}

// setDefaults applies the defaults shared by every configuration source.
// The innertube client version is a snapshot of the upstream site's WEB
// client and is expected to need periodic updates as YouTube evolves.
func setDefaults(v *viper.Viper) {
	v.SetDefault("youtube.watch_url", "https://www.youtube.com/watch?v=%s")
	v.SetDefault("innertube.transcript_url", "https://www.youtube.com/youtubei/v1/get_transcript")
	v.SetDefault("innertube.client_name", "WEB")
	v.SetDefault("innertube.client_version", "2.20250222.10.00")
	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("output.file_path", "")
}

// NewConfiguration creates a new Configuration instance with default settings
func NewConfiguration() *Configuration {
	v := viper.New()
	setDefaults(v)
	return &Configuration{viper: v}
}

// NewConfigurationFromFile creates a Configuration instance from a config file
func NewConfigurationFromFile(configFile string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	return &Configuration{viper: v}, nil
}

// NewConfigurationFromEnv creates a Configuration instance that reads from environment variables
func NewConfigurationFromEnv() (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	// Set up environment variable mapping
	v.SetEnvPrefix("YTT")
	v.AutomaticEnv()

	// Map specific environment variables
	v.BindEnv("youtube.watch_url", "YTT_WATCH_URL")
	v.BindEnv("innertube.transcript_url", "YTT_TRANSCRIPT_URL")
	v.BindEnv("innertube.client_version", "YTT_INNERTUBE_CLIENT_VERSION")
	v.BindEnv("http.timeout_seconds", "YTT_HTTP_TIMEOUT_SECONDS")
	v.BindEnv("output.file_path", "YTT_OUTPUT_FILE_PATH")

	return &Configuration{viper: v}, nil
}

// GetWatchURL returns the watch-page URL template with a single %s verb for
// the video identifier
func (c *Configuration) GetWatchURL() string {
	return c.viper.GetString("youtube.watch_url")
}

// GetTranscriptURL returns the internal transcript-fetch endpoint URL
func (c *Configuration) GetTranscriptURL() string {
	return c.viper.GetString("innertube.transcript_url")
}

// GetClientName returns the innertube client name sent with transcript requests
func (c *Configuration) GetClientName() string {
	return c.viper.GetString("innertube.client_name")
}

// GetClientVersion returns the innertube client version sent with transcript requests
func (c *Configuration) GetClientVersion() string {
	return c.viper.GetString("innertube.client_version")
}

// GetHTTPTimeout returns the overall timeout applied to each HTTP request
func (c *Configuration) GetHTTPTimeout() time.Duration {
	return time.Duration(c.viper.GetInt("http.timeout_seconds")) * time.Second
}

// GetOutputFilePath returns the transcript output file path; empty means stdout
func (c *Configuration) GetOutputFilePath() string {
	return c.viper.GetString("output.file_path")
}
