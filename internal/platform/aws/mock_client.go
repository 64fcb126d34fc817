package aws

import (
	"context"
)

// MockClient is a mock implementation of InfrastructureManager.
// Unset funcs return a fixed, successful default.
type MockClient struct {
	// Network
	CreateVPCFunc             func(ctx context.Context, cidr string) (string, error)
	VPCAvailableFunc          func(ctx context.Context, vpcID string) (bool, error)
	CreateDHCPOptionsFunc     func(ctx context.Context, domainName string, nameServers []string) (string, error)
	AssociateDHCPOptionsFunc  func(ctx context.Context, dhcpOptionsID, vpcID string) error
	AvailabilityZonesFunc     func(ctx context.Context) ([]string, error)
	CreateSubnetFunc          func(ctx context.Context, vpcID, cidr, zone string) (string, error)
	SubnetAvailableFunc       func(ctx context.Context, subnetID string) (bool, error)
	CreateInternetGatewayFunc func(ctx context.Context) (string, error)
	AttachInternetGatewayFunc func(ctx context.Context, gatewayID, vpcID string) error
	CreateRouteTableFunc      func(ctx context.Context, vpcID string) (string, error)
	CreateDefaultRouteFunc    func(ctx context.Context, routeTableID, gatewayID string) error
	AssociateRouteTableFunc   func(ctx context.Context, routeTableID, subnetID string) error

	// Security group
	CreateSecurityGroupFunc func(ctx context.Context, name, description, vpcID string) (string, error)
	AuthorizeIngressFunc    func(ctx context.Context, groupID string, rules []IngressRule) error

	// Key pair
	DeleteKeyPairFunc func(ctx context.Context, name string) error
	CreateKeyPairFunc func(ctx context.Context, name string) (*KeyPair, error)
	ImportKeyPairFunc func(ctx context.Context, name string, publicKey []byte) (string, error)

	// Image and instance
	FindImagesFunc       func(ctx context.Context, pattern string, owners []string) ([]Image, error)
	RunInstanceFunc      func(ctx context.Context, opts InstanceCreateOpts) ([]string, error)
	InstanceStatusOKFunc func(ctx context.Context, instanceID string) (bool, error)
	InstancePublicIPFunc func(ctx context.Context, instanceID string) (string, error)

	// Tags
	TagResourceFunc func(ctx context.Context, resourceID string, tags map[string]string) error

	// IP
	GetPublicIPFunc func(ctx context.Context) (string, error)
}

// Ensure interface compliance
var _ InfrastructureManager = (*MockClient)(nil)

func (m *MockClient) CreateVPC(ctx context.Context, cidr string) (string, error) {
	if m.CreateVPCFunc != nil {
		return m.CreateVPCFunc(ctx, cidr)
	}
	return "vpc-mock", nil
}

func (m *MockClient) VPCAvailable(ctx context.Context, vpcID string) (bool, error) {
	if m.VPCAvailableFunc != nil {
		return m.VPCAvailableFunc(ctx, vpcID)
	}
	return true, nil
}

func (m *MockClient) CreateDHCPOptions(ctx context.Context, domainName string, nameServers []string) (string, error) {
	if m.CreateDHCPOptionsFunc != nil {
		return m.CreateDHCPOptionsFunc(ctx, domainName, nameServers)
	}
	return "dopt-mock", nil
}

func (m *MockClient) AssociateDHCPOptions(ctx context.Context, dhcpOptionsID, vpcID string) error {
	if m.AssociateDHCPOptionsFunc != nil {
		return m.AssociateDHCPOptionsFunc(ctx, dhcpOptionsID, vpcID)
	}
	return nil
}

func (m *MockClient) AvailabilityZones(ctx context.Context) ([]string, error) {
	if m.AvailabilityZonesFunc != nil {
		return m.AvailabilityZonesFunc(ctx)
	}
	return []string{"us-east-1a"}, nil
}

func (m *MockClient) CreateSubnet(ctx context.Context, vpcID, cidr, zone string) (string, error) {
	if m.CreateSubnetFunc != nil {
		return m.CreateSubnetFunc(ctx, vpcID, cidr, zone)
	}
	return "subnet-mock-" + zone, nil
}

func (m *MockClient) SubnetAvailable(ctx context.Context, subnetID string) (bool, error) {
	if m.SubnetAvailableFunc != nil {
		return m.SubnetAvailableFunc(ctx, subnetID)
	}
	return true, nil
}

func (m *MockClient) CreateInternetGateway(ctx context.Context) (string, error) {
	if m.CreateInternetGatewayFunc != nil {
		return m.CreateInternetGatewayFunc(ctx)
	}
	return "igw-mock", nil
}

func (m *MockClient) AttachInternetGateway(ctx context.Context, gatewayID, vpcID string) error {
	if m.AttachInternetGatewayFunc != nil {
		return m.AttachInternetGatewayFunc(ctx, gatewayID, vpcID)
	}
	return nil
}

func (m *MockClient) CreateRouteTable(ctx context.Context, vpcID string) (string, error) {
	if m.CreateRouteTableFunc != nil {
		return m.CreateRouteTableFunc(ctx, vpcID)
	}
	return "rtb-mock", nil
}

func (m *MockClient) CreateDefaultRoute(ctx context.Context, routeTableID, gatewayID string) error {
	if m.CreateDefaultRouteFunc != nil {
		return m.CreateDefaultRouteFunc(ctx, routeTableID, gatewayID)
	}
	return nil
}

func (m *MockClient) AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) error {
	if m.AssociateRouteTableFunc != nil {
		return m.AssociateRouteTableFunc(ctx, routeTableID, subnetID)
	}
	return nil
}

func (m *MockClient) CreateSecurityGroup(ctx context.Context, name, description, vpcID string) (string, error) {
	if m.CreateSecurityGroupFunc != nil {
		return m.CreateSecurityGroupFunc(ctx, name, description, vpcID)
	}
	return "sg-mock", nil
}

func (m *MockClient) AuthorizeIngress(ctx context.Context, groupID string, rules []IngressRule) error {
	if m.AuthorizeIngressFunc != nil {
		return m.AuthorizeIngressFunc(ctx, groupID, rules)
	}
	return nil
}

func (m *MockClient) DeleteKeyPair(ctx context.Context, name string) error {
	if m.DeleteKeyPairFunc != nil {
		return m.DeleteKeyPairFunc(ctx, name)
	}
	return nil
}

func (m *MockClient) CreateKeyPair(ctx context.Context, name string) (*KeyPair, error) {
	if m.CreateKeyPairFunc != nil {
		return m.CreateKeyPairFunc(ctx, name)
	}
	return &KeyPair{Name: name, ID: "key-mock", PrivateKey: []byte("mock-private-key")}, nil
}

func (m *MockClient) ImportKeyPair(ctx context.Context, name string, publicKey []byte) (string, error) {
	if m.ImportKeyPairFunc != nil {
		return m.ImportKeyPairFunc(ctx, name, publicKey)
	}
	return "key-mock", nil
}

func (m *MockClient) FindImages(ctx context.Context, pattern string, owners []string) ([]Image, error) {
	if m.FindImagesFunc != nil {
		return m.FindImagesFunc(ctx, pattern, owners)
	}
	return []Image{{ID: "ami-mock", Name: "mock-image", CreationDate: "2020-01-01T00:00:00.000Z"}}, nil
}

func (m *MockClient) RunInstance(ctx context.Context, opts InstanceCreateOpts) ([]string, error) {
	if m.RunInstanceFunc != nil {
		return m.RunInstanceFunc(ctx, opts)
	}
	return []string{"i-mock"}, nil
}

func (m *MockClient) InstanceStatusOK(ctx context.Context, instanceID string) (bool, error) {
	if m.InstanceStatusOKFunc != nil {
		return m.InstanceStatusOKFunc(ctx, instanceID)
	}
	return true, nil
}

func (m *MockClient) InstancePublicIP(ctx context.Context, instanceID string) (string, error) {
	if m.InstancePublicIPFunc != nil {
		return m.InstancePublicIPFunc(ctx, instanceID)
	}
	return "127.0.0.1", nil
}

func (m *MockClient) TagResource(ctx context.Context, resourceID string, tags map[string]string) error {
	if m.TagResourceFunc != nil {
		return m.TagResourceFunc(ctx, resourceID, tags)
	}
	return nil
}

func (m *MockClient) GetPublicIP(ctx context.Context) (string, error) {
	if m.GetPublicIPFunc != nil {
		return m.GetPublicIPFunc(ctx)
	}
	return "127.0.0.1", nil
}
