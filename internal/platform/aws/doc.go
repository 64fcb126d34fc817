// Package aws provides the cloud resource gateway used by the provisioning
// phases: a thin wrapper around the EC2 API plus the public IP lookup.
//
// # Architecture
//
//   - client.go: Gateway interfaces and value types
//   - real_client.go: RealClient construction and options
//   - network.go: VPCs, DHCP options, zones, subnets, gateways and routes
//   - security_group.go: Security groups and ingress rules
//   - key_pair.go: Key pair delete, create and import
//   - image.go: Image discovery by name pattern
//   - instance.go: Instance launch, status and address lookup
//   - tags.go: Resource tagging
//   - public_ip.go: Caller public IP via an IP echo service
//   - errors.go: API error classification
//   - mock_client.go: Func-field mock for unit tests
//
// Every call is a single request. Nothing here retries or waits; readiness
// checks return a boolean and the caller decides how to poll.
//
// A success response that lacks the record the call exists to produce
// (for example CreateVpc without a VPC) is reported as ErrMissingRecord.
package aws
