package config

// DefaultConfigFilename is the configuration file looked up in the working
// directory when no path is given.
const DefaultConfigFilename = "oneliner.yaml"

// Key pair delete policies.
const (
	// DeletePolicyTolerateMissing ignores a "not found" error when deleting a
	// stale key pair and fails on any other error.
	DeletePolicyTolerateMissing = "tolerate-missing"
	// DeletePolicyStrict fails on any delete error, including "not found".
	DeletePolicyStrict = "strict"
)

// DefaultKeyBits is the RSA key size used for locally generated keys.
const DefaultKeyBits = 4096

// Config holds the configuration of one provisioning run.
type Config struct {
	// Region is the AWS region. Empty means the SDK default chain decides.
	Region string `yaml:"region"`

	// Prefix is prepended to the Name tag of every resource.
	Prefix string `yaml:"prefix" validate:"required,max=64"`

	// OutputDir receives the private key and inventory files.
	OutputDir string `yaml:"output_dir" validate:"required"`

	// MetricsFile, when set, receives a Prometheus text dump of run metrics.
	MetricsFile string `yaml:"metrics_file"`

	// IPEchoURL returns the caller's public IP as a plaintext body.
	IPEchoURL string `yaml:"ip_echo_url" validate:"required,url"`

	// AppPort is the port of the sample application printed in the final URL.
	AppPort int `yaml:"app_port" validate:"min=1,max=65535"`

	Network       NetworkConfig       `yaml:"network"`
	SecurityGroup SecurityGroupConfig `yaml:"security_group"`
	KeyPair       KeyPairConfig       `yaml:"key_pair"`
	Instance      InstanceConfig      `yaml:"instance"`
	Inventory     InventoryConfig     `yaml:"inventory"`
}

// NetworkConfig describes the VPC and its DHCP options.
type NetworkConfig struct {
	CIDR              string   `yaml:"cidr" validate:"required,cidrv4"`
	DomainName        string   `yaml:"domain_name" validate:"required"`
	DomainNameServers []string `yaml:"domain_name_servers" validate:"required,min=1,dive,required"`

	// TagRouteTable opts into Name-tagging the route table, which is
	// otherwise left untagged.
	TagRouteTable bool `yaml:"tag_route_table"`
}

// SecurityGroupConfig describes the instance security group.
type SecurityGroupConfig struct {
	Name        string `yaml:"name" validate:"required,max=255"`
	Description string `yaml:"description" validate:"required,max=255"`
	// Ports are opened for TCP from the caller's /32, in order.
	Ports []int `yaml:"ports" validate:"required,min=1,dive,min=1,max=65535"`
}

// KeyPairConfig describes the SSH key pair.
type KeyPairConfig struct {
	Name         string `yaml:"name" validate:"required,max=255"`
	DeletePolicy string `yaml:"delete_policy" validate:"oneof=tolerate-missing strict"`

	// GenerateLocally creates the key locally and imports the public half
	// instead of letting EC2 generate it.
	GenerateLocally bool `yaml:"generate_locally"`
	Bits            int  `yaml:"bits" validate:"oneof=2048 4096"`
}

// InstanceConfig describes the compute instance.
type InstanceConfig struct {
	Type             string   `yaml:"type" validate:"required"`
	ImageNamePattern string   `yaml:"image_name_pattern" validate:"required"`
	ImageOwners      []string `yaml:"image_owners" validate:"omitempty,dive,required"`
	UserDataFile     string   `yaml:"user_data_file" validate:"required"`
}

// InventoryConfig describes the generated Ansible inventory.
type InventoryConfig struct {
	Alias   string   `yaml:"alias" validate:"required"`
	User    string   `yaml:"user" validate:"required"`
	SSHPort int      `yaml:"ssh_port" validate:"min=1,max=65535"`
	S3      S3Config `yaml:"s3"`
}

// S3Config configures the optional inventory mirror. An empty bucket
// disables it.
type S3Config struct {
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
	// Endpoint targets an S3-compatible store instead of AWS.
	Endpoint     string `yaml:"endpoint" validate:"omitempty,url"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// Enabled reports whether the inventory mirror is configured.
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Prefix:    "oneliner",
		OutputDir: ".",
		IPEchoURL: "http://ipecho.net/plain",
		AppPort:   8000,
		Network: NetworkConfig{
			CIDR:              "192.168.0.0/16",
			DomainName:        "ec2.internal",
			DomainNameServers: []string{"AmazonProvidedDNS"},
		},
		SecurityGroup: SecurityGroupConfig{
			Name:        "oneliner-sg",
			Description: "oneliner 8000/22",
			Ports:       []int{8000, 22},
		},
		KeyPair: KeyPairConfig{
			Name:         "oneliner-key",
			DeletePolicy: DeletePolicyTolerateMissing,
			Bits:         DefaultKeyBits,
		},
		Instance: InstanceConfig{
			Type:             "t2.medium",
			ImageNamePattern: "ubuntu/images/hvm-ssd/ubuntu-xenial-16.04-amd64*",
			UserDataFile:     "install_python.sh",
		},
		Inventory: InventoryConfig{
			Alias:   "ol",
			User:    "ubuntu",
			SSHPort: 22,
		},
	}
}
