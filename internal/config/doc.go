// Package config defines the configuration model for a provisioning run.
//
// The [Config] struct carries every name, address range and path the
// provisioning phases use. [Default] reproduces the stock values; a YAML
// file (oneliner.yaml, auto-detected in the working directory) overrides
// them field by field. Polling intervals and timeouts are read separately
// from the environment by [LoadTimeouts].
package config
