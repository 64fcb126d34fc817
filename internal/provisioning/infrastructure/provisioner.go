package infrastructure

import "github.com/imamik/oneliner/internal/provisioning"

// Phase names.
const (
	PhaseVPC             = "vpc"
	PhaseDHCPOptions     = "dhcp-options"
	PhaseSubnets         = "subnets"
	PhaseInternetGateway = "internet-gateway"
	PhaseRouteTable      = "route-table"
	PhaseSecurityGroup   = "security-group"
)

// Phases returns the infrastructure phases in execution order.
func Phases() []provisioning.Phase {
	return []provisioning.Phase{
		NewVPCPhase(),
		NewDHCPOptionsPhase(),
		NewSubnetsPhase(),
		NewInternetGatewayPhase(),
		NewRouteTablePhase(),
		NewSecurityGroupPhase(),
	}
}
