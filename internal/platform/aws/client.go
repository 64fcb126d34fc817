package aws

import (
	"context"
	"errors"
)

// ErrMissingRecord is returned when a successful API response does not
// contain the record the call was expected to produce.
var ErrMissingRecord = errors.New("expected record missing from response")

// IngressRule is a single inbound permission on a security group.
type IngressRule struct {
	Protocol string
	Port     int32
	CIDR     string
}

// KeyPair is a key pair created by EC2. PrivateKey is only available at
// creation time.
type KeyPair struct {
	Name       string
	ID         string
	PrivateKey []byte
}

// Image is a machine image candidate. CreationDate is passed through as
// returned by the API (ISO-8601).
type Image struct {
	ID           string
	Name         string
	CreationDate string
}

// InstanceCreateOpts holds all parameters for launching an instance.
type InstanceCreateOpts struct {
	ImageID         string
	InstanceType    string
	KeyName         string
	SubnetID        string
	SecurityGroupID string
	// UserData must already be base64 encoded.
	UserData          string
	AssociatePublicIP bool
}

// NetworkManager defines the interface for building the network topology.
type NetworkManager interface {
	CreateVPC(ctx context.Context, cidr string) (string, error)
	// VPCAvailable reports whether the VPC has reached the available state.
	VPCAvailable(ctx context.Context, vpcID string) (bool, error)
	CreateDHCPOptions(ctx context.Context, domainName string, nameServers []string) (string, error)
	AssociateDHCPOptions(ctx context.Context, dhcpOptionsID, vpcID string) error
	// AvailabilityZones returns zone names in provider order.
	AvailabilityZones(ctx context.Context) ([]string, error)
	CreateSubnet(ctx context.Context, vpcID, cidr, zone string) (string, error)
	SubnetAvailable(ctx context.Context, subnetID string) (bool, error)
	CreateInternetGateway(ctx context.Context) (string, error)
	AttachInternetGateway(ctx context.Context, gatewayID, vpcID string) error
	CreateRouteTable(ctx context.Context, vpcID string) (string, error)
	// CreateDefaultRoute routes 0.0.0.0/0 through the internet gateway.
	CreateDefaultRoute(ctx context.Context, routeTableID, gatewayID string) error
	AssociateRouteTable(ctx context.Context, routeTableID, subnetID string) error
}

// SecurityGroupManager defines the interface for managing security groups.
type SecurityGroupManager interface {
	CreateSecurityGroup(ctx context.Context, name, description, vpcID string) (string, error)
	AuthorizeIngress(ctx context.Context, groupID string, rules []IngressRule) error
}

// KeyPairManager defines the interface for managing key pairs.
type KeyPairManager interface {
	DeleteKeyPair(ctx context.Context, name string) error
	CreateKeyPair(ctx context.Context, name string) (*KeyPair, error)
	// ImportKeyPair registers an OpenSSH public key and returns the key pair id.
	ImportKeyPair(ctx context.Context, name string, publicKey []byte) (string, error)
}

// ImageManager defines the interface for discovering images.
type ImageManager interface {
	// FindImages returns images whose name matches pattern (EC2 wildcards),
	// restricted to owners when given, in provider order.
	FindImages(ctx context.Context, pattern string, owners []string) ([]Image, error)
}

// InstanceManager defines the interface for managing instances.
type InstanceManager interface {
	// RunInstance launches one instance and returns the ids of the instances
	// the API reported, which may be none.
	RunInstance(ctx context.Context, opts InstanceCreateOpts) ([]string, error)
	// InstanceStatusOK reports whether the instance status check is "ok".
	// An empty status list means not ready yet.
	InstanceStatusOK(ctx context.Context, instanceID string) (bool, error)
	InstancePublicIP(ctx context.Context, instanceID string) (string, error)
}

// Tagger applies tags to resources.
type Tagger interface {
	TagResource(ctx context.Context, resourceID string, tags map[string]string) error
}

// InfrastructureManager combines all gateway interfaces.
type InfrastructureManager interface {
	NetworkManager
	SecurityGroupManager
	KeyPairManager
	ImageManager
	InstanceManager
	Tagger
	// GetPublicIP returns the public IP address of the caller.
	GetPublicIP(ctx context.Context) (string, error)
}
