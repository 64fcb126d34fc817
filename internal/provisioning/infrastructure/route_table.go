package infrastructure

import (
	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/naming"
)

// RouteTablePhase creates a route table with a default route through the
// internet gateway and associates it with the first subnet.
//
// The route table is left untagged unless network.tag_route_table is set.
type RouteTablePhase struct{}

// NewRouteTablePhase creates a new route table phase.
func NewRouteTablePhase() *RouteTablePhase {
	return &RouteTablePhase{}
}

// Name implements the provisioning.Phase interface.
func (p *RouteTablePhase) Name() string { return PhaseRouteTable }

// Requires implements the provisioning.Phase interface.
func (p *RouteTablePhase) Requires() []provisioning.StateKey {
	return []provisioning.StateKey{
		provisioning.KeyVPCID,
		provisioning.KeySubnetIDs,
		provisioning.KeyInternetGatewayID,
	}
}

// Produces implements the provisioning.Phase interface.
func (p *RouteTablePhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyRouteTableID}
}

// Provision implements the provisioning.Phase interface.
func (p *RouteTablePhase) Provision(ctx *provisioning.Context) error {
	vpcID := ctx.State.String(provisioning.KeyVPCID)
	subnetID := ctx.State.String(provisioning.KeySubnetIDs)
	gatewayID := ctx.State.String(provisioning.KeyInternetGatewayID)
	name := naming.RouteTable(ctx.Config.Prefix)

	provisioning.LogResourceCreating(ctx.Observer, PhaseRouteTable, "route table", name)
	routeTableID, err := ctx.Infra.CreateRouteTable(ctx, vpcID)
	if err != nil {
		return provisioning.ProviderError("create route table in "+vpcID, err)
	}
	ctx.Metrics.ResourceCreated("route-table")
	if err := ctx.Record(provisioning.KeyRouteTableID, routeTableID); err != nil {
		return err
	}

	if err := ctx.Infra.CreateDefaultRoute(ctx, routeTableID, gatewayID); err != nil {
		return provisioning.ProviderError("create default route via "+gatewayID, err)
	}
	if err := ctx.Infra.AssociateRouteTable(ctx, routeTableID, subnetID); err != nil {
		return provisioning.ProviderError("associate route table with "+subnetID, err)
	}
	ctx.Observer.Printf("[%s] Route table %s routes 0.0.0.0/0 via %s for %s", PhaseRouteTable, routeTableID, gatewayID, subnetID)

	if ctx.Config.Network.TagRouteTable {
		if err := ctx.NameResource(routeTableID, name); err != nil {
			return err
		}
	}
	provisioning.LogResourceCreated(ctx.Observer, PhaseRouteTable, "route table", name, routeTableID)
	return nil
}
