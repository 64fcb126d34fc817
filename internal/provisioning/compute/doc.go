// Package compute provides compute provisioning on EC2.
//
// It replaces the SSH key pair, selects the newest matching machine image,
// launches a single instance into the first subnet and waits for its status
// checks, then records the instance's public IPv4 address.
package compute
