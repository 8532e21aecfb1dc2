package configs

type Configs struct {
	// App configuration
	AppName               string  `mapstructure:"app_name"`
	AppEnv                string  `mapstructure:"app_env"`
	AppLogLevel           string  `mapstructure:"app_log_level"`
	AppMetricSamplingRate float64 `mapstructure:"app_metric_sampling_rate"`
	AppPort               int     `mapstructure:"app_port"`

	// Upstream demo-store API configuration
	StoreApiBaseUrl         string `mapstructure:"store_api_base_url"`
	StoreApiTimeoutMs       int    `mapstructure:"store_api_timeout_ms"`
	StoreApiCacheEnabled    bool   `mapstructure:"store_api_cache_enabled"`
	StoreApiCacheTtlSeconds int    `mapstructure:"store_api_cache_ttl_seconds"`
	StoreApiTopDealsLimit   int    `mapstructure:"store_api_top_deals_limit"`

	// CORS configuration
	CorsAllowedOrigins string `mapstructure:"cors_allowed_origins"`
}
