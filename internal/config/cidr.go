package config

import (
	"encoding/binary"
	"fmt"
	"net"
)

// SubnetNewBits is the prefix extension applied to the VPC block for each
// zone subnet (/16 -> /24).
const SubnetNewBits = 8

// CIDRSubnet calculates a subnet address given a network address, a netmask size increase, and a subnet number.
// This mimics the behavior of Terraform's cidrsubnet function.
//
// Parameters:
//   - prefix: The network prefix (e.g., "192.168.0.0/16")
//   - newbits: The number of additional bits to add to the prefix length (e.g., 8 for /24 inside /16)
//   - netnum: The zero-based index of the subnet to calculate
//
// Note: Only IPv4 addresses are supported. IPv6 addresses will return an error.
func CIDRSubnet(prefix string, newbits int, netnum int) (string, error) {
	_, network, err := net.ParseCIDR(prefix)
	if err != nil {
		return "", fmt.Errorf("invalid CIDR prefix: %w", err)
	}

	if network.IP.To4() == nil {
		return "", fmt.Errorf("only IPv4 addresses are supported, got IPv6: %s", prefix)
	}

	maskSize, totalBits := network.Mask.Size()
	newMaskSize := maskSize + newbits

	if newbits < 0 || newMaskSize > totalBits {
		return "", fmt.Errorf("prefix extension of %d bits is invalid for %s", newbits, prefix)
	}

	maxSubnets := 1 << newbits
	if netnum < 0 || netnum >= maxSubnets {
		return "", fmt.Errorf("subnet number %d exceeds max subnets %d", netnum, maxSubnets)
	}

	ipInt := ipToUint32(network.IP.To4())
	subnetSize := uint32(1) << (totalBits - newMaskSize)
	// #nosec G115
	ipInt += uint32(netnum) * subnetSize

	return fmt.Sprintf("%s/%d", uint32ToIP(ipInt).String(), newMaskSize), nil
}

// ZoneSubnetCIDR returns the block for the zone at zoneIndex (zero based,
// provider order). Zone i gets subnet number i+1, so the first zone of
// 192.168.0.0/16 is 192.168.1.0/24. Subnet number 0 is never allocated,
// which caps a VPC at 255 zone subnets.
func ZoneSubnetCIDR(vpcCIDR string, zoneIndex int) (string, error) {
	if zoneIndex < 0 {
		return "", fmt.Errorf("zone index must not be negative, got %d", zoneIndex)
	}
	cidr, err := CIDRSubnet(vpcCIDR, SubnetNewBits, zoneIndex+1)
	if err != nil {
		return "", fmt.Errorf("cannot allocate subnet for zone %d: %w", zoneIndex, err)
	}
	return cidr, nil
}

func ipToUint32(ip net.IP) uint32 {
	return binary.BigEndian.Uint32(ip)
}

func uint32ToIP(val uint32) net.IP {
	ip := make(net.IP, 4)
	binary.BigEndian.PutUint32(ip, val)
	return ip
}
