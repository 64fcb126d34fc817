package naming

import "fmt"

// Naming functions for provisioned resources.
// The security group and key pair use configured names rather than the prefix.

func VPC(prefix string) string {
	return fmt.Sprintf("%s-vpc", prefix)
}

func DHCPOptions(prefix string) string {
	return fmt.Sprintf("%s-dhcp-options", prefix)
}

func Subnet(prefix, zone string) string {
	return fmt.Sprintf("%s-sub-%s", prefix, zone)
}

func InternetGateway(prefix string) string {
	return fmt.Sprintf("%s-igw", prefix)
}

func RouteTable(prefix string) string {
	return fmt.Sprintf("%s-rt", prefix)
}

func Instance(prefix string) string {
	return fmt.Sprintf("%s-instance", prefix)
}

// KeyFile returns the file name the private key of keyName is written to.
func KeyFile(keyName string) string {
	return keyName + ".pem"
}
