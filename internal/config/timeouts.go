package config

import (
	"os"
	"time"
)

// Timeouts holds polling intervals and timeouts.
// These values can be customized via environment variables.
type Timeouts struct {
	NetworkPollInterval  time.Duration // Interval between VPC/subnet state checks
	Network              time.Duration // Timeout for a VPC or subnet to become available
	InstancePollInterval time.Duration // Interval between instance status checks
	Instance             time.Duration // Timeout for instance status to become ok
	IPEcho               time.Duration // Timeout for the public IP lookup request
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - ONELINER_POLL_NETWORK_INTERVAL (default: 1s)
//   - ONELINER_TIMEOUT_NETWORK (default: 5m)
//   - ONELINER_POLL_INSTANCE_INTERVAL (default: 15s)
//   - ONELINER_TIMEOUT_INSTANCE (default: 20m)
//   - ONELINER_TIMEOUT_IP_ECHO (default: 10s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		NetworkPollInterval:  parseDuration("ONELINER_POLL_NETWORK_INTERVAL", 1*time.Second),
		Network:              parseDuration("ONELINER_TIMEOUT_NETWORK", 5*time.Minute),
		InstancePollInterval: parseDuration("ONELINER_POLL_INSTANCE_INTERVAL", 15*time.Second),
		Instance:             parseDuration("ONELINER_TIMEOUT_INSTANCE", 20*time.Minute),
		IPEcho:               parseDuration("ONELINER_TIMEOUT_IP_ECHO", 10*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set, fails to parse, or is not positive, the
// default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}
