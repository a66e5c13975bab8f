// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. Environment
// variables use the EVENTS_ prefix with nested keys joined by underscores,
// for example EVENTS_LOG_LEVEL or EVENTS_PRICING_BULK_DISCOUNT.
package config
