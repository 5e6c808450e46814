// Package config loads environment-driven defaults for the validation
// engine: default locale, an optional schema directory and strict schema
// registration. It reads an optional .env file before parsing.
package config
