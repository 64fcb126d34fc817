package infrastructure

import (
	"context"
	"fmt"

	"github.com/imamik/oneliner/internal/config"
	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/naming"
)

// SubnetsPhase creates one subnet per availability zone.
//
// Zone i, in the order the provider lists them, receives the (i+1)-th /24
// of a /16 VPC: 192.168.1.0/24, 192.168.2.0/24, and so on. Only the first
// subnet is used downstream.
type SubnetsPhase struct{}

// NewSubnetsPhase creates a new subnets phase.
func NewSubnetsPhase() *SubnetsPhase {
	return &SubnetsPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *SubnetsPhase) Name() string { return PhaseSubnets }

// Requires implements the provisioning.Phase interface.
func (p *SubnetsPhase) Requires() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyVPCID}
}

// Produces implements the provisioning.Phase interface.
func (p *SubnetsPhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeySubnetIDs}
}

// Provision implements the provisioning.Phase interface.
func (p *SubnetsPhase) Provision(ctx *provisioning.Context) error {
	vpcID := ctx.State.String(provisioning.KeyVPCID)

	zones, err := ctx.Infra.AvailabilityZones(ctx)
	if err != nil {
		return provisioning.ProviderError("list availability zones", err)
	}
	if len(zones) == 0 {
		return provisioning.StateErrorf("no availability zones returned for region")
	}

	// All blocks are allocated before any subnet is created.
	cidrs, err := AllocateSubnets(ctx.Config.Network.CIDR, len(zones))
	if err != nil {
		return provisioning.StateErrorf("allocate subnets: %v", err)
	}

	subnetIDs := make([]string, 0, len(zones))
	for i, zone := range zones {
		ctx.Observer.Progress(PhaseSubnets, i+1, len(zones))
		subnetID, err := createSubnet(ctx, vpcID, cidrs[i], zone)
		if subnetID != "" {
			subnetIDs = append(subnetIDs, subnetID)
		}
		if err != nil {
			// Subnets created so far stay in the failure report.
			if len(subnetIDs) > 0 {
				if recErr := ctx.RecordAll(provisioning.KeySubnetIDs, subnetIDs); recErr != nil {
					return recErr
				}
			}
			return err
		}
	}

	return ctx.RecordAll(provisioning.KeySubnetIDs, subnetIDs)
}

func createSubnet(ctx *provisioning.Context, vpcID, cidr, zone string) (string, error) {
	name := naming.Subnet(ctx.Config.Prefix, zone)

	provisioning.LogResourceCreating(ctx.Observer, PhaseSubnets, "subnet", name)
	subnetID, err := ctx.Infra.CreateSubnet(ctx, vpcID, cidr, zone)
	if err != nil {
		return "", provisioning.ProviderError(fmt.Sprintf("create subnet %s in %s", cidr, zone), err)
	}
	ctx.Metrics.ResourceCreated("subnet")
	ctx.Observer.Printf("[%s] Created subnet %s (%s) in %s", PhaseSubnets, subnetID, cidr, zone)

	err = ctx.WaitUntil("subnet", subnetID, ctx.Timeouts.NetworkPollInterval, ctx.Timeouts.Network,
		func(c context.Context) (bool, error) {
			return ctx.Infra.SubnetAvailable(c, subnetID)
		})
	if err != nil {
		return subnetID, err
	}

	if err := ctx.ApplyTags(subnetID, ctx.TagBuilder(name).WithZone(zone).Build()); err != nil {
		return subnetID, err
	}
	provisioning.LogResourceCreated(ctx.Observer, PhaseSubnets, "subnet", name, subnetID)
	return subnetID, nil
}

// AllocateSubnets returns the CIDR block for each of n zones under vpcCIDR.
func AllocateSubnets(vpcCIDR string, n int) ([]string, error) {
	cidrs := make([]string, 0, n)
	for i := range n {
		cidr, err := config.ZoneSubnetCIDR(vpcCIDR, i)
		if err != nil {
			return nil, err
		}
		cidrs = append(cidrs, cidr)
	}
	return cidrs, nil
}
