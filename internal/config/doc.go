// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// SERVER_HOST and SERVER_PORT override the file on top of that, so a bare
// environment is enough to point the client at a server.
package config
