// Package poll provides bounded readiness polling.
//
// The [Until] function repeatedly evaluates a condition at a fixed interval
// until it reports ready, returns an error, the timeout elapses, or the
// context is cancelled. It is used to wait for EC2 resources (VPCs, subnets,
// instances) to settle before the next provisioning step runs.
package poll
