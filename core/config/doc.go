// Package config loads application configuration.
//
// Configuration comes from environment variables (optionally via a .env
// file) with defaults declared as struct tags, mirrored into viper keys by
// reflection. The vendor list lives in a separate YAML file so credentials
// and endpoints can be managed per deployment without new environment
// variables per vendor.
package config
