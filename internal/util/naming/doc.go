// Package naming provides consistent naming functions for provisioned EC2 resources.
//
// Resource names follow the pattern {prefix}-{type}, with subnets carrying
// their availability zone ({prefix}-sub-{zone}). Names are applied as the
// "Name" tag so a run's resources can be found in the console and cleaned up.
package naming
