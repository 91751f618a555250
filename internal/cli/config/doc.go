// Package config layers CLI settings from defaults, adaptergen.yaml, the
// environment and command line flags.
package config
