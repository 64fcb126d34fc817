package infrastructure

import (
	"context"

	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/naming"
)

// VPCPhase creates the VPC and waits for it to become available.
type VPCPhase struct{}

// NewVPCPhase creates a new VPC phase.
func NewVPCPhase() *VPCPhase {
	return &VPCPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *VPCPhase) Name() string { return PhaseVPC }

// Requires implements the provisioning.Phase interface.
func (p *VPCPhase) Requires() []provisioning.StateKey { return nil }

// Produces implements the provisioning.Phase interface.
func (p *VPCPhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyVPCID}
}

// Provision implements the provisioning.Phase interface.
func (p *VPCPhase) Provision(ctx *provisioning.Context) error {
	cidr := ctx.Config.Network.CIDR
	name := naming.VPC(ctx.Config.Prefix)

	provisioning.LogResourceCreating(ctx.Observer, PhaseVPC, "vpc", name)
	vpcID, err := ctx.Infra.CreateVPC(ctx, cidr)
	if err != nil {
		return provisioning.ProviderError("create VPC", err)
	}
	ctx.Metrics.ResourceCreated("vpc")
	if err := ctx.Record(provisioning.KeyVPCID, vpcID); err != nil {
		return err
	}
	ctx.Observer.Printf("[%s] Created VPC %s with CIDR %s", PhaseVPC, vpcID, cidr)

	err = ctx.WaitUntil("vpc", vpcID, ctx.Timeouts.NetworkPollInterval, ctx.Timeouts.Network,
		func(c context.Context) (bool, error) {
			return ctx.Infra.VPCAvailable(c, vpcID)
		})
	if err != nil {
		return err
	}

	if err := ctx.NameResource(vpcID, name); err != nil {
		return err
	}
	provisioning.LogResourceCreated(ctx.Observer, PhaseVPC, "vpc", name, vpcID)
	return nil
}
