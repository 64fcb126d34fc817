// Package provisioning provides shared types, interfaces, and orchestration for provisioning.
//
// # Subpackages
//
//   - infrastructure/: VPC, DHCP options, subnets, internet gateway, route table, security group
//   - compute/: key pair, instance launch, public IP lookup
//   - inventory/: connection inventory for follow-on configuration
//
// # Core Types
//
// Context carries configuration, state, the infrastructure client, artifact sinks and the observer.
// Phase defines a provisioning step with Name(), Requires(), Produces() and Provision() methods.
// State accumulates write-once identifiers from each phase (VPC id, subnet ids, instance id, public IP).
// Pipeline checks the phase order against the declared inputs and outputs, then runs the phases
// sequentially and stops at the first failure.
package provisioning
