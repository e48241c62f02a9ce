// Package config loads the chain engine's tunables via viper, grounded
// on rohankatakam-coderisk/internal/config/config.go's Default+Load
// shape: a zero-value-safe Default(), a Load that layers a config file
// and CHAINCTL_-prefixed environment variables over it, and unknown
// keys ignored rather than rejected (spec.md §9's configuration
// surface is intentionally small).
package config
