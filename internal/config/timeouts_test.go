package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var timeoutEnvVars = []string{
	"ONELINER_POLL_NETWORK_INTERVAL",
	"ONELINER_TIMEOUT_NETWORK",
	"ONELINER_POLL_INSTANCE_INTERVAL",
	"ONELINER_TIMEOUT_INSTANCE",
	"ONELINER_TIMEOUT_IP_ECHO",
}

func clearTimeoutEnvVars(t *testing.T) {
	t.Helper()
	for _, name := range timeoutEnvVars {
		t.Setenv(name, "")
	}
}

func TestLoadTimeouts_Defaults(t *testing.T) {
	clearTimeoutEnvVars(t)

	timeouts := LoadTimeouts()

	assert.Equal(t, 1*time.Second, timeouts.NetworkPollInterval)
	assert.Equal(t, 5*time.Minute, timeouts.Network)
	assert.Equal(t, 15*time.Second, timeouts.InstancePollInterval)
	assert.Equal(t, 20*time.Minute, timeouts.Instance)
	assert.Equal(t, 10*time.Second, timeouts.IPEcho)
}

func TestLoadTimeouts_FromEnv(t *testing.T) {
	clearTimeoutEnvVars(t)
	t.Setenv("ONELINER_POLL_NETWORK_INTERVAL", "250ms")
	t.Setenv("ONELINER_TIMEOUT_INSTANCE", "45m")

	timeouts := LoadTimeouts()

	assert.Equal(t, 250*time.Millisecond, timeouts.NetworkPollInterval)
	assert.Equal(t, 45*time.Minute, timeouts.Instance)
	assert.Equal(t, 5*time.Minute, timeouts.Network)
}

func TestLoadTimeouts_InvalidValuesFallBack(t *testing.T) {
	clearTimeoutEnvVars(t)
	t.Setenv("ONELINER_TIMEOUT_NETWORK", "soon")
	t.Setenv("ONELINER_POLL_INSTANCE_INTERVAL", "-5s")
	t.Setenv("ONELINER_TIMEOUT_IP_ECHO", "0s")

	timeouts := LoadTimeouts()

	assert.Equal(t, 5*time.Minute, timeouts.Network)
	assert.Equal(t, 15*time.Second, timeouts.InstancePollInterval)
	assert.Equal(t, 10*time.Second, timeouts.IPEcho)
}
