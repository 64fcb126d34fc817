package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "oneliner", cmd.Use)
	assert.NotNil(t, cmd.RunE, "root command provisions")
	assert.True(t, cmd.SilenceUsage)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Equal(t, []string{"version"}, names)
}

func TestRoot_Flags(t *testing.T) {
	cmd := Root()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "config", shorthand: "c", defValue: ""},
		{name: "output-dir", defValue: ""},
		{name: "log-level", defValue: "info"},
		{name: "log-format", defValue: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag, "flag %s should exist", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestRoot_FlagsAreOptional(t *testing.T) {
	cmd := Root()

	for _, name := range []string{"config", "output-dir", "log-level", "log-format"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag)
		_, required := flag.Annotations["cobra_annotation_bash_completion_one_required_flag"]
		assert.False(t, required, "flag %s should be optional", name)
	}
}
