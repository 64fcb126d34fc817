// Package infrastructure provisions the network topology and security perimeter on EC2.
//
// It creates a VPC with DHCP options, one subnet per availability zone, an
// internet gateway with a default route, and a security group that admits
// the caller's public IP on the configured ports. Every run creates new
// resources; nothing is looked up or reused.
package infrastructure
