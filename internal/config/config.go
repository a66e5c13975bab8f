package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Pricing PricingConfig `mapstructure:"pricing" validate:"required"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// PricingConfig contains the parameters of the default price calculator.
type PricingConfig struct {
	// BulkThreshold is the quantity from which the bulk discount applies
	BulkThreshold int `mapstructure:"bulk_threshold" validate:"gt=0"`
	// BulkDiscount is the multiplier applied to bulk purchases
	BulkDiscount float64 `mapstructure:"bulk_discount" validate:"gt=0,lte=1"`
	// SpeakerThreshold is the speaker count above which the premium applies
	SpeakerThreshold int `mapstructure:"speaker_threshold" validate:"gt=0"`
	// SpeakerPremium is the multiplier applied to events with many speakers
	SpeakerPremium float64 `mapstructure:"speaker_premium" validate:"gte=1"`
}

// RulesConfig selects which baseline validation rules are installed.
type RulesConfig struct {
	RequireFutureDate    bool `mapstructure:"require_future_date"`
	RequirePositivePrice bool `mapstructure:"require_positive_price"`
	MinSpeakers          int  `mapstructure:"min_speakers" validate:"gte=0"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace" validate:"required_if=Enabled true"`
}
