package infrastructure

import (
	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/naming"
)

// InternetGatewayPhase creates an internet gateway and attaches it to the VPC.
type InternetGatewayPhase struct{}

// NewInternetGatewayPhase creates a new internet gateway phase.
func NewInternetGatewayPhase() *InternetGatewayPhase {
	return &InternetGatewayPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *InternetGatewayPhase) Name() string { return PhaseInternetGateway }

// Requires implements the provisioning.Phase interface.
func (p *InternetGatewayPhase) Requires() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyVPCID}
}

// Produces implements the provisioning.Phase interface.
func (p *InternetGatewayPhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyInternetGatewayID}
}

// Provision implements the provisioning.Phase interface.
func (p *InternetGatewayPhase) Provision(ctx *provisioning.Context) error {
	vpcID := ctx.State.String(provisioning.KeyVPCID)
	name := naming.InternetGateway(ctx.Config.Prefix)

	provisioning.LogResourceCreating(ctx.Observer, PhaseInternetGateway, "internet gateway", name)
	gatewayID, err := ctx.Infra.CreateInternetGateway(ctx)
	if err != nil {
		return provisioning.ProviderError("create internet gateway", err)
	}
	ctx.Metrics.ResourceCreated("internet-gateway")
	if err := ctx.Record(provisioning.KeyInternetGatewayID, gatewayID); err != nil {
		return err
	}

	if err := ctx.Infra.AttachInternetGateway(ctx, gatewayID, vpcID); err != nil {
		return provisioning.ProviderError("attach internet gateway to "+vpcID, err)
	}
	ctx.Observer.Printf("[%s] Attached internet gateway %s to %s", PhaseInternetGateway, gatewayID, vpcID)

	if err := ctx.NameResource(gatewayID, name); err != nil {
		return err
	}
	provisioning.LogResourceCreated(ctx.Observer, PhaseInternetGateway, "internet gateway", name, gatewayID)
	return nil
}
