// Package tags provides consistent tagging for EC2 resources.
//
// Every resource created by a run carries a Name tag plus the run id and a
// managed-by marker under the oneliner: key prefix, so an operator can find
// everything a single run left behind.
package tags
