// Package config loads the service configuration from YAML files, .env files
// and environment variables. It decides which backend base URL the web client
// talks to: an API_URL override when one is set, otherwise the fallback of the
// selected deployment profile.
package config
