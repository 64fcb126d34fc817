package infrastructure

import (
	"fmt"
	"net"

	"github.com/imamik/oneliner/internal/platform/aws"
	"github.com/imamik/oneliner/internal/provisioning"
)

// SecurityGroupPhase creates the instance security group and opens the
// configured TCP ports to the caller's public IPv4 address only.
type SecurityGroupPhase struct{}

// NewSecurityGroupPhase creates a new security group phase.
func NewSecurityGroupPhase() *SecurityGroupPhase {
	return &SecurityGroupPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *SecurityGroupPhase) Name() string { return PhaseSecurityGroup }

// Requires implements the provisioning.Phase interface.
func (p *SecurityGroupPhase) Requires() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyVPCID}
}

// Produces implements the provisioning.Phase interface.
func (p *SecurityGroupPhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeySecurityGroupID, provisioning.KeyCallerIP}
}

// Provision implements the provisioning.Phase interface.
func (p *SecurityGroupPhase) Provision(ctx *provisioning.Context) error {
	sg := ctx.Config.SecurityGroup
	vpcID := ctx.State.String(provisioning.KeyVPCID)

	provisioning.LogResourceCreating(ctx.Observer, PhaseSecurityGroup, "security group", sg.Name)
	groupID, err := ctx.Infra.CreateSecurityGroup(ctx, sg.Name, sg.Description, vpcID)
	if err != nil {
		return provisioning.ProviderError("create security group "+sg.Name, err)
	}
	ctx.Metrics.ResourceCreated("security-group")
	if err := ctx.Record(provisioning.KeySecurityGroupID, groupID); err != nil {
		return err
	}

	callerIP, err := resolveCallerIP(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Record(provisioning.KeyCallerIP, callerIP); err != nil {
		return err
	}

	rules := IngressRules(callerIP, sg.Ports)
	if err := ctx.Infra.AuthorizeIngress(ctx, groupID, rules); err != nil {
		return provisioning.ProviderError("authorize ingress on "+groupID, err)
	}
	for _, rule := range rules {
		ctx.Observer.Printf("[%s] Allowed %s/%d from %s", PhaseSecurityGroup, rule.Protocol, rule.Port, rule.CIDR)
	}

	if err := ctx.NameResource(groupID, sg.Name); err != nil {
		return err
	}
	provisioning.LogResourceCreated(ctx.Observer, PhaseSecurityGroup, "security group", sg.Name, groupID)
	return nil
}

// resolveCallerIP looks up the public IPv4 address of the caller.
func resolveCallerIP(ctx *provisioning.Context) (string, error) {
	ip, err := ctx.Infra.GetPublicIP(ctx)
	if err != nil {
		return "", provisioning.ResolutionError("resolve caller IP", err)
	}
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.To4() == nil {
		return "", provisioning.ResolutionError("resolve caller IP", fmt.Errorf("%q is not an IPv4 address", ip))
	}
	ctx.Observer.Printf("[%s] Caller public IP is %s", PhaseSecurityGroup, ip)
	return parsed.To4().String(), nil
}

// IngressRules returns one TCP rule per port, in order, each restricted to ip/32.
func IngressRules(ip string, ports []int) []aws.IngressRule {
	rules := make([]aws.IngressRule, 0, len(ports))
	for _, port := range ports {
		rules = append(rules, aws.IngressRule{
			Protocol: "tcp",
			Port:     int32(port),
			CIDR:     ip + "/32",
		})
	}
	return rules
}
