package testing

import (
	"slices"

	"github.com/imamik/oneliner/internal/config"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder creates a new ConfigBuilder starting from the stock defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: *config.Default()}
}

// WithPrefix sets the resource name prefix.
func (b *ConfigBuilder) WithPrefix(prefix string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Prefix = prefix
	return newBuilder
}

// WithVPCCIDR sets the VPC CIDR block.
func (b *ConfigBuilder) WithVPCCIDR(cidr string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Network.CIDR = cidr
	return newBuilder
}

// WithTagRouteTable enables tagging of the route table.
func (b *ConfigBuilder) WithTagRouteTable(enabled bool) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Network.TagRouteTable = enabled
	return newBuilder
}

// WithPorts sets the ports opened in the security group.
func (b *ConfigBuilder) WithPorts(ports ...int) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.SecurityGroup.Ports = slices.Clone(ports)
	return newBuilder
}

// WithDeletePolicy sets the key pair delete policy.
func (b *ConfigBuilder) WithDeletePolicy(policy string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.KeyPair.DeletePolicy = policy
	return newBuilder
}

// WithLocalKeyGeneration enables local key generation with the given key size.
func (b *ConfigBuilder) WithLocalKeyGeneration(bits int) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.KeyPair.GenerateLocally = true
	newBuilder.cfg.KeyPair.Bits = bits
	return newBuilder
}

// WithUserDataFile sets the bootstrap script path.
func (b *ConfigBuilder) WithUserDataFile(path string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Instance.UserDataFile = path
	return newBuilder
}

// WithImageOwners restricts image discovery to owners.
func (b *ConfigBuilder) WithImageOwners(owners ...string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Instance.ImageOwners = slices.Clone(owners)
	return newBuilder
}

// WithOutputDir sets the artifact output directory.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.OutputDir = dir
	return newBuilder
}

// WithS3Mirror enables the inventory mirror.
func (b *ConfigBuilder) WithS3Mirror(bucket, prefix string) *ConfigBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Inventory.S3.Bucket = bucket
	newBuilder.cfg.Inventory.S3.Prefix = prefix
	return newBuilder
}

// Build returns the constructed config.
func (b *ConfigBuilder) Build() *config.Config {
	return &b.clone().cfg
}

// clone creates a deep copy of the builder for immutability.
func (b *ConfigBuilder) clone() *ConfigBuilder {
	newCfg := b.cfg
	newCfg.Network.DomainNameServers = slices.Clone(b.cfg.Network.DomainNameServers)
	newCfg.SecurityGroup.Ports = slices.Clone(b.cfg.SecurityGroup.Ports)
	newCfg.Instance.ImageOwners = slices.Clone(b.cfg.Instance.ImageOwners)
	return &ConfigBuilder{cfg: newCfg}
}

// MinimalConfig returns the stock configuration.
func MinimalConfig() *config.Config {
	return NewConfigBuilder().Build()
}
