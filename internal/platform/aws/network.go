package aws

import (
	"context"
	"fmt"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// CreateVPC creates a VPC with the given IPv4 block.
func (c *RealClient) CreateVPC(ctx context.Context, cidr string) (string, error) {
	out, err := c.ec2.CreateVpc(ctx, &ec2.CreateVpcInput{
		CidrBlock: awsStd.String(cidr),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create vpc %s: %w", cidr, err)
	}
	if out.Vpc == nil || awsStd.ToString(out.Vpc.VpcId) == "" {
		return "", fmt.Errorf("create vpc %s: %w", cidr, ErrMissingRecord)
	}
	return awsStd.ToString(out.Vpc.VpcId), nil
}

// VPCAvailable reports whether the VPC state is "available".
func (c *RealClient) VPCAvailable(ctx context.Context, vpcID string) (bool, error) {
	out, err := c.ec2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{
		VpcIds: []string{vpcID},
	})
	if err != nil {
		return false, fmt.Errorf("failed to describe vpc %s: %w", vpcID, err)
	}
	for _, vpc := range out.Vpcs {
		if awsStd.ToString(vpc.VpcId) == vpcID {
			return vpc.State == types.VpcStateAvailable, nil
		}
	}
	return false, nil
}

// CreateDHCPOptions creates a DHCP option set with a domain name and name servers.
func (c *RealClient) CreateDHCPOptions(ctx context.Context, domainName string, nameServers []string) (string, error) {
	out, err := c.ec2.CreateDhcpOptions(ctx, &ec2.CreateDhcpOptionsInput{
		DhcpConfigurations: []types.NewDhcpConfiguration{
			{Key: awsStd.String("domain-name"), Values: []string{domainName}},
			{Key: awsStd.String("domain-name-servers"), Values: nameServers},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create dhcp options: %w", err)
	}
	if out.DhcpOptions == nil || awsStd.ToString(out.DhcpOptions.DhcpOptionsId) == "" {
		return "", fmt.Errorf("create dhcp options: %w", ErrMissingRecord)
	}
	return awsStd.ToString(out.DhcpOptions.DhcpOptionsId), nil
}

// AssociateDHCPOptions associates a DHCP option set with a VPC.
func (c *RealClient) AssociateDHCPOptions(ctx context.Context, dhcpOptionsID, vpcID string) error {
	_, err := c.ec2.AssociateDhcpOptions(ctx, &ec2.AssociateDhcpOptionsInput{
		DhcpOptionsId: awsStd.String(dhcpOptionsID),
		VpcId:         awsStd.String(vpcID),
	})
	if err != nil {
		return fmt.Errorf("failed to associate dhcp options %s with vpc %s: %w", dhcpOptionsID, vpcID, err)
	}
	return nil
}

// AvailabilityZones returns the zone names of the region in provider order.
func (c *RealClient) AvailabilityZones(ctx context.Context) ([]string, error) {
	out, err := c.ec2.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe availability zones: %w", err)
	}
	zones := make([]string, 0, len(out.AvailabilityZones))
	for _, z := range out.AvailabilityZones {
		if name := awsStd.ToString(z.ZoneName); name != "" {
			zones = append(zones, name)
		}
	}
	return zones, nil
}

// CreateSubnet creates a subnet of the VPC in the given zone.
func (c *RealClient) CreateSubnet(ctx context.Context, vpcID, cidr, zone string) (string, error) {
	out, err := c.ec2.CreateSubnet(ctx, &ec2.CreateSubnetInput{
		VpcId:            awsStd.String(vpcID),
		CidrBlock:        awsStd.String(cidr),
		AvailabilityZone: awsStd.String(zone),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create subnet %s in %s: %w", cidr, zone, err)
	}
	if out.Subnet == nil || awsStd.ToString(out.Subnet.SubnetId) == "" {
		return "", fmt.Errorf("create subnet %s in %s: %w", cidr, zone, ErrMissingRecord)
	}
	return awsStd.ToString(out.Subnet.SubnetId), nil
}

// SubnetAvailable reports whether the subnet state is "available".
func (c *RealClient) SubnetAvailable(ctx context.Context, subnetID string) (bool, error) {
	out, err := c.ec2.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		SubnetIds: []string{subnetID},
	})
	if err != nil {
		return false, fmt.Errorf("failed to describe subnet %s: %w", subnetID, err)
	}
	for _, s := range out.Subnets {
		if awsStd.ToString(s.SubnetId) == subnetID {
			return s.State == types.SubnetStateAvailable, nil
		}
	}
	return false, nil
}

// CreateInternetGateway creates an unattached internet gateway.
func (c *RealClient) CreateInternetGateway(ctx context.Context) (string, error) {
	out, err := c.ec2.CreateInternetGateway(ctx, &ec2.CreateInternetGatewayInput{})
	if err != nil {
		return "", fmt.Errorf("failed to create internet gateway: %w", err)
	}
	if out.InternetGateway == nil || awsStd.ToString(out.InternetGateway.InternetGatewayId) == "" {
		return "", fmt.Errorf("create internet gateway: %w", ErrMissingRecord)
	}
	return awsStd.ToString(out.InternetGateway.InternetGatewayId), nil
}

// AttachInternetGateway attaches the gateway to the VPC.
func (c *RealClient) AttachInternetGateway(ctx context.Context, gatewayID, vpcID string) error {
	_, err := c.ec2.AttachInternetGateway(ctx, &ec2.AttachInternetGatewayInput{
		InternetGatewayId: awsStd.String(gatewayID),
		VpcId:             awsStd.String(vpcID),
	})
	if err != nil {
		return fmt.Errorf("failed to attach internet gateway %s to vpc %s: %w", gatewayID, vpcID, err)
	}
	return nil
}

// CreateRouteTable creates a route table in the VPC.
func (c *RealClient) CreateRouteTable(ctx context.Context, vpcID string) (string, error) {
	out, err := c.ec2.CreateRouteTable(ctx, &ec2.CreateRouteTableInput{
		VpcId: awsStd.String(vpcID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create route table in vpc %s: %w", vpcID, err)
	}
	if out.RouteTable == nil || awsStd.ToString(out.RouteTable.RouteTableId) == "" {
		return "", fmt.Errorf("create route table in vpc %s: %w", vpcID, ErrMissingRecord)
	}
	return awsStd.ToString(out.RouteTable.RouteTableId), nil
}

// CreateDefaultRoute adds a 0.0.0.0/0 route through the internet gateway.
func (c *RealClient) CreateDefaultRoute(ctx context.Context, routeTableID, gatewayID string) error {
	_, err := c.ec2.CreateRoute(ctx, &ec2.CreateRouteInput{
		RouteTableId:         awsStd.String(routeTableID),
		DestinationCidrBlock: awsStd.String("0.0.0.0/0"),
		GatewayId:            awsStd.String(gatewayID),
	})
	if err != nil {
		return fmt.Errorf("failed to create default route in %s via %s: %w", routeTableID, gatewayID, err)
	}
	return nil
}

// AssociateRouteTable associates the route table with a subnet.
func (c *RealClient) AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) error {
	_, err := c.ec2.AssociateRouteTable(ctx, &ec2.AssociateRouteTableInput{
		RouteTableId: awsStd.String(routeTableID),
		SubnetId:     awsStd.String(subnetID),
	})
	if err != nil {
		return fmt.Errorf("failed to associate route table %s with subnet %s: %w", routeTableID, subnetID, err)
	}
	return nil
}
