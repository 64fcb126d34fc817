package infrastructure

import (
	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/naming"
)

// DHCPOptionsPhase creates the DHCP option set and associates it with the VPC.
type DHCPOptionsPhase struct{}

// NewDHCPOptionsPhase creates a new DHCP options phase.
func NewDHCPOptionsPhase() *DHCPOptionsPhase {
	return &DHCPOptionsPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *DHCPOptionsPhase) Name() string { return PhaseDHCPOptions }

// Requires implements the provisioning.Phase interface.
func (p *DHCPOptionsPhase) Requires() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyVPCID}
}

// Produces implements the provisioning.Phase interface.
func (p *DHCPOptionsPhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyDHCPOptionsID}
}

// Provision implements the provisioning.Phase interface.
func (p *DHCPOptionsPhase) Provision(ctx *provisioning.Context) error {
	network := ctx.Config.Network
	vpcID := ctx.State.String(provisioning.KeyVPCID)
	name := naming.DHCPOptions(ctx.Config.Prefix)

	provisioning.LogResourceCreating(ctx.Observer, PhaseDHCPOptions, "dhcp options", name)
	optionsID, err := ctx.Infra.CreateDHCPOptions(ctx, network.DomainName, network.DomainNameServers)
	if err != nil {
		return provisioning.ProviderError("create DHCP options", err)
	}
	ctx.Metrics.ResourceCreated("dhcp-options")
	if err := ctx.Record(provisioning.KeyDHCPOptionsID, optionsID); err != nil {
		return err
	}

	if err := ctx.Infra.AssociateDHCPOptions(ctx, optionsID, vpcID); err != nil {
		return provisioning.ProviderError("associate DHCP options with "+vpcID, err)
	}
	ctx.Observer.Printf("[%s] Associated DHCP options %s (domain %s) with %s", PhaseDHCPOptions, optionsID, network.DomainName, vpcID)

	if err := ctx.NameResource(optionsID, name); err != nil {
		return err
	}
	provisioning.LogResourceCreated(ctx.Observer, PhaseDHCPOptions, "dhcp options", name, optionsID)
	return nil
}
