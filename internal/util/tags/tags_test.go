package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTagBuilder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		resource string
	}{
		{"vpc name", "oneliner-vpc"},
		{"subnet name", "oneliner-sub-us-east-1a"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewTagBuilder(tt.resource).Build()

			assert.Equal(t, tt.resource, got[KeyName])
			assert.Equal(t, ManagedByOneliner, got[KeyManagedBy])
			assert.NotContains(t, got, KeyRunID)
		})
	}
}

func TestWithRunIDIfSet(t *testing.T) {
	t.Parallel()

	withID := NewTagBuilder("x").WithRunIDIfSet("run-1").Build()
	assert.Equal(t, "run-1", withID[KeyRunID])

	withoutID := NewTagBuilder("x").WithRunIDIfSet("").Build()
	assert.NotContains(t, withoutID, KeyRunID)
}

func TestWithZone(t *testing.T) {
	t.Parallel()
	got := NewTagBuilder("x").WithZone("us-east-1b").Build()
	assert.Equal(t, "us-east-1b", got[KeyZone])
}

func TestMerge_OverridesExisting(t *testing.T) {
	t.Parallel()
	got := NewTagBuilder("x").Merge(map[string]string{KeyName: "y", "team": "infra"}).Build()
	assert.Equal(t, "y", got[KeyName])
	assert.Equal(t, "infra", got["team"])
}

func TestBuild_ReturnsCopy(t *testing.T) {
	t.Parallel()
	tb := NewTagBuilder("x")
	first := tb.Build()
	first[KeyName] = "mutated"

	assert.Equal(t, "x", tb.Build()[KeyName])
}

func TestSortedKeys(t *testing.T) {
	t.Parallel()
	keys := SortedKeys(map[string]string{"b": "", "Name": "", "a": ""})
	assert.Equal(t, []string{"Name", "a", "b"}, keys)
}
