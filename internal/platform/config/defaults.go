package config

const (
	defaultServerPort = 8080

	// Zero disables circuit breaking.
	defaultCircuitBreakerMaxFailures = 0
	defaultCircuitBreakerHalfOpen    = 1

	defaultMaxBodyBytes = 64 << 20
	defaultMaxCSVBytes  = 256 << 20
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "60s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.timeout":                         "30s",
		"client.user_agent":                      "dataworks/1.0",
		"client.max_body_bytes":                  defaultMaxBodyBytes,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"tasks.allowed_root":  "/data",
		"tasks.guard_mode":    "prefix",
		"tasks.max_csv_bytes": defaultMaxCSVBytes,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "dataworks",
	}
}
