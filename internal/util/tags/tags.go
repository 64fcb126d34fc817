package tags

import "sort"

// Standard tag keys for EC2 resources.
const (
	// KeyName is the tag the EC2 console shows as the resource name.
	KeyName = "Name"

	// KeyRunID identifies the provisioning run that created a resource.
	KeyRunID = "oneliner:run-id"

	// KeyManagedBy identifies the management system.
	KeyManagedBy = "oneliner:managed-by"

	// KeyZone records the availability zone a subnet was placed in.
	KeyZone = "oneliner:zone"
)

// ManagedByOneliner is the value of KeyManagedBy.
const ManagedByOneliner = "oneliner"

// TagBuilder provides a fluent interface for building EC2 tag sets.
type TagBuilder struct {
	tags map[string]string
}

// NewTagBuilder creates a builder with the Name and managed-by tags set.
func NewTagBuilder(name string) *TagBuilder {
	return &TagBuilder{
		tags: map[string]string{
			KeyName:      name,
			KeyManagedBy: ManagedByOneliner,
		},
	}
}

// WithRunIDIfSet adds the run id tag only if runID is non-empty.
func (tb *TagBuilder) WithRunIDIfSet(runID string) *TagBuilder {
	if runID != "" {
		tb.tags[KeyRunID] = runID
	}
	return tb
}

// WithZone adds the availability zone tag.
func (tb *TagBuilder) WithZone(zone string) *TagBuilder {
	tb.tags[KeyZone] = zone
	return tb
}

// Merge adds all tags from the provided map. Existing keys are overwritten.
func (tb *TagBuilder) Merge(extra map[string]string) *TagBuilder {
	for k, v := range extra {
		tb.tags[k] = v
	}
	return tb
}

// Build returns a copy of the tag map.
func (tb *TagBuilder) Build() map[string]string {
	result := make(map[string]string, len(tb.tags))
	for k, v := range tb.tags {
		result[k] = v
	}
	return result
}

// SortedKeys returns the keys of a tag map in lexical order, so requests
// built from a map are deterministic.
func SortedKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
