package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jellydator/validation"
	"github.com/spf13/viper"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey          = "API_PORT"
	apiPrefixEnvKey        = "API_PREFIX"
	riskEngineURLEnvKey    = "RISK_ENGINE_URL"
	riskEngineSecretEnvKey = "RISK_ENGINE_SECRET"
	riskEngineTimeoutKey   = "RISK_ENGINE_TIMEOUT"
	analyzeRateLimitEnvKey = "ANALYZE_RATE_LIMIT"
	analyzeRateBurstEnvKey = "ANALYZE_RATE_BURST"
	corsOriginsEnvKey      = "CORS_ALLOWED_ORIGINS"
	logLevelEnvKey         = "LOG_LEVEL"
	shutdownTimeoutEnvKey  = "SHUTDOWN_TIMEOUT"
)

type App struct {
	Port              string
	APIPrefix         string
	RiskEngineURL     string
	RiskEngineSecret  string
	RiskEngineTimeout time.Duration
	AnalyzeRateLimit  float64
	AnalyzeRateBurst  int
	CORSOrigins       []string
	LogLevel          string
	ShutdownTimeout   time.Duration
}

// NewApp reads the configuration from the environment. Values missing from the
// environment are taken from configFile when one is given, then from defaults.
func NewApp(configFile string) (App, error) {
	v := viper.New()
	v.SetDefault(apiPortEnvKey, "8000")
	v.SetDefault(apiPrefixEnvKey, "/api")
	v.SetDefault(riskEngineTimeoutKey, 30*time.Second)
	v.SetDefault(analyzeRateLimitEnvKey, 5.0)
	v.SetDefault(analyzeRateBurstEnvKey, 10)
	v.SetDefault(corsOriginsEnvKey, "*")
	v.SetDefault(logLevelEnvKey, "info")
	v.SetDefault(shutdownTimeoutEnvKey, 10*time.Second)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("read config file %q: %w", configFile, err)
		}
	}

	if !v.IsSet(riskEngineURLEnvKey) {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, riskEngineURLEnvKey)
	}

	app := App{
		Port:              v.GetString(apiPortEnvKey),
		APIPrefix:         "/" + strings.Trim(v.GetString(apiPrefixEnvKey), "/"),
		RiskEngineURL:     v.GetString(riskEngineURLEnvKey),
		RiskEngineSecret:  v.GetString(riskEngineSecretEnvKey),
		RiskEngineTimeout: v.GetDuration(riskEngineTimeoutKey),
		AnalyzeRateLimit:  v.GetFloat64(analyzeRateLimitEnvKey),
		AnalyzeRateBurst:  v.GetInt(analyzeRateBurstEnvKey),
		CORSOrigins:       splitList(v.GetString(corsOriginsEnvKey)),
		LogLevel:          v.GetString(logLevelEnvKey),
		ShutdownTimeout:   v.GetDuration(shutdownTimeoutEnvKey),
	}
	if app.APIPrefix == "/" {
		app.APIPrefix = ""
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.RiskEngineURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&a.RiskEngineTimeout, validation.Required),
		validation.Field(&a.AnalyzeRateLimit, validation.Required),
		validation.Field(&a.AnalyzeRateBurst, validation.Required, validation.Min(1)),
		validation.Field(&a.ShutdownTimeout, validation.Required),
	)
}

func absoluteURL(value any) error {
	raw, _ := value.(string)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
