package config

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// VPC prefix bounds accepted by EC2 once subnets take /N+8 of the block:
// EC2 rejects VPCs wider than /16 and subnets narrower than /28.
const (
	MinVPCPrefixLength = 16
	MaxVPCPrefixLength = 20
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration and returns a descriptive error for the
// first problem found.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	if err := c.validateNetwork(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}

	if err := c.validateSecurityGroup(); err != nil {
		return fmt.Errorf("security group validation failed: %w", err)
	}

	return nil
}

func (c *Config) validateNetwork() error {
	_, network, err := net.ParseCIDR(c.Network.CIDR)
	if err != nil {
		return fmt.Errorf("invalid cidr %q: %w", c.Network.CIDR, err)
	}

	ones, _ := network.Mask.Size()
	if ones < MinVPCPrefixLength || ones > MaxVPCPrefixLength {
		return fmt.Errorf("cidr %q: prefix length must be between /%d and /%d",
			c.Network.CIDR, MinVPCPrefixLength, MaxVPCPrefixLength)
	}

	return nil
}

func (c *Config) validateSecurityGroup() error {
	seen := make(map[int]bool, len(c.SecurityGroup.Ports))
	for _, port := range c.SecurityGroup.Ports {
		if seen[port] {
			return fmt.Errorf("duplicate port %d", port)
		}
		seen[port] = true
	}
	return nil
}

func convertValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %v", field, fe.Param(), fe.Value())
	case "min", "max":
		return fmt.Errorf("%s must satisfy %s=%s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s failed %q validation (value %v)", field, fe.Tag(), fe.Value())
	}
}
