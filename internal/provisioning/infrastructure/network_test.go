package infrastructure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/oneliner/internal/provisioning"
	testutil "github.com/imamik/oneliner/internal/testing"
	"github.com/imamik/oneliner/internal/util/tags"
)

// runPhases runs the given phases through a pipeline, as the orchestrator does.
func runPhases(ctx *provisioning.Context, phases ...provisioning.Phase) error {
	return provisioning.NewPipeline(phases...).Run(ctx)
}

func TestPhases_Order(t *testing.T) {
	t.Parallel()
	var names []string
	for _, p := range Phases() {
		names = append(names, p.Name())
	}

	assert.Equal(t, []string{"vpc", "dhcp-options", "subnets", "internet-gateway", "route-table", "security-group"}, names)
	require.NoError(t, provisioning.NewPipeline(Phases()...).Validate())
}

func TestVPCPhase_Success(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	var gotCIDR string
	mockInfra.CreateVPCFunc = func(_ context.Context, cidr string) (string, error) {
		gotCIDR = cidr
		return "vpc-1", nil
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase())

	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0/16", gotCIDR)
	assert.Equal(t, "vpc-1", ctx.State.String(provisioning.KeyVPCID))
	assert.Equal(t, "oneliner-vpc", fixture.TagsOf("vpc-1")[tags.KeyName])
	assert.Equal(t, ctx.RunID, fixture.TagsOf("vpc-1")[tags.KeyRunID])
}

func TestVPCPhase_PollsUntilAvailable(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	checks := 0
	mockInfra.VPCAvailableFunc = func(_ context.Context, _ string) (bool, error) {
		checks++
		return checks >= 3, nil
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	require.NoError(t, runPhases(ctx, NewVPCPhase()))

	assert.Equal(t, 3, checks)
	// Tagging happens only once the VPC is available.
	assert.Equal(t, 1, fixture.CallCount("TagResource"))
}

func TestVPCPhase_CreateError(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.WithNetworkError(errors.New("VpcLimitExceeded"))
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase())

	require.Error(t, err)
	assert.Equal(t, provisioning.KindProvider, provisioning.KindOf(err))
	assert.Contains(t, err.Error(), "vpc phase failed")
	assert.Contains(t, err.Error(), "VpcLimitExceeded")
	assert.False(t, ctx.State.Has(provisioning.KeyVPCID))
	assert.Zero(t, fixture.CallCount("TagResource"))
}

func TestVPCPhase_Timeout(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	mockInfra.VPCAvailableFunc = func(_ context.Context, _ string) (bool, error) {
		return false, nil
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)
	ctx.Timeouts.Network = 20 * ctx.Timeouts.NetworkPollInterval

	err := runPhases(ctx, NewVPCPhase())

	require.Error(t, err)
	assert.Equal(t, provisioning.KindTimeout, provisioning.KindOf(err))
	// The id is kept so it can be reported for cleanup.
	assert.Equal(t, "vpc-1", ctx.State.String(provisioning.KeyVPCID))
}

func TestDHCPOptionsPhase_Success(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	var gotDomain string
	var gotServers []string
	var associated [2]string
	mockInfra.CreateDHCPOptionsFunc = func(_ context.Context, domain string, servers []string) (string, error) {
		gotDomain, gotServers = domain, servers
		return "dopt-1", nil
	}
	mockInfra.AssociateDHCPOptionsFunc = func(_ context.Context, optionsID, vpcID string) error {
		associated = [2]string{optionsID, vpcID}
		return nil
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewDHCPOptionsPhase())

	require.NoError(t, err)
	assert.Equal(t, "ec2.internal", gotDomain)
	assert.Equal(t, []string{"AmazonProvidedDNS"}, gotServers)
	assert.Equal(t, [2]string{"dopt-1", "vpc-1"}, associated)
	assert.Equal(t, "dopt-1", ctx.State.String(provisioning.KeyDHCPOptionsID))
	assert.Equal(t, "oneliner-dhcp-options", fixture.TagsOf("dopt-1")[tags.KeyName])
}

func TestDHCPOptionsPhase_AssociateError(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	mockInfra.AssociateDHCPOptionsFunc = func(_ context.Context, _, _ string) error {
		return errors.New("InvalidDhcpOptionID.NotFound")
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewDHCPOptionsPhase())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dhcp-options phase failed")
	assert.Empty(t, fixture.TagsOf("dopt-1"))
}

func TestSubnetsPhase_OneSubnetPerZone(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	var zones []string
	mockInfra.CreateSubnetFunc = func(_ context.Context, vpcID, cidr, zone string) (string, error) {
		assert.Equal(t, "vpc-1", vpcID)
		zones = append(zones, zone)
		id := "subnet-" + zone
		fixture.Subnets[id] = cidr
		return id, nil
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewSubnetsPhase())

	require.NoError(t, err)
	assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, zones)
	assert.Equal(t, []string{"subnet-us-east-1a", "subnet-us-east-1b"}, ctx.State.Strings(provisioning.KeySubnetIDs))
	assert.Equal(t, "192.168.1.0/24", fixture.Subnets["subnet-us-east-1a"])
	assert.Equal(t, "192.168.2.0/24", fixture.Subnets["subnet-us-east-1b"])

	subnetTags := fixture.TagsOf("subnet-us-east-1b")
	assert.Equal(t, "oneliner-sub-us-east-1b", subnetTags[tags.KeyName])
	assert.Equal(t, "us-east-1b", subnetTags[tags.KeyZone])
}

func TestSubnetsPhase_KeepsProviderZoneOrder(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	fixture.Zones = []string{"us-east-1c", "us-east-1a", "us-east-1b"}
	mockInfra := fixture.NetworkOnly()
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	require.NoError(t, runPhases(ctx, NewVPCPhase(), NewSubnetsPhase()))

	ids := ctx.State.Strings(provisioning.KeySubnetIDs)
	require.Len(t, ids, 3)
	assert.Equal(t, "192.168.1.0/24", fixture.Subnets[ids[0]])
	assert.Equal(t, "us-east-1c", fixture.TagsOf(ids[0])[tags.KeyZone])
	assert.Equal(t, "192.168.3.0/24", fixture.Subnets[ids[2]])
}

func TestSubnetsPhase_NoZones(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	fixture.Zones = nil
	mockInfra := fixture.NetworkOnly()
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewSubnetsPhase())

	require.Error(t, err)
	assert.Equal(t, provisioning.KindState, provisioning.KindOf(err))
	assert.Zero(t, fixture.CallCount("CreateSubnet"))
}

func TestSubnetsPhase_SubnetNotAvailable(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	mockInfra.SubnetAvailableFunc = func(_ context.Context, _ string) (bool, error) {
		return false, errors.New("InvalidSubnetID.NotFound")
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewSubnetsPhase())

	require.Error(t, err)
	assert.Equal(t, provisioning.KindProvider, provisioning.KindOf(err))
	assert.Equal(t, 1, fixture.CallCount("CreateSubnet"))
	assert.Len(t, ctx.State.Strings(provisioning.KeySubnetIDs), 1)
}

func TestSubnetsPhase_SecondZoneFailsKeepsFirst(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	mockInfra.AvailabilityZonesFunc = func(_ context.Context) ([]string, error) {
		return []string{"eu-west-1a", "eu-west-1b"}, nil
	}
	var waits int
	mockInfra.SubnetAvailableFunc = func(_ context.Context, _ string) (bool, error) {
		waits++
		if waits > 1 {
			return false, errors.New("InvalidSubnetID.NotFound")
		}
		return true, nil
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewSubnetsPhase())

	require.Error(t, err)
	assert.Equal(t, 2, fixture.CallCount("CreateSubnet"))
	subnets := ctx.State.Strings(provisioning.KeySubnetIDs)
	require.Len(t, subnets, 2)
	assert.NotEqual(t, subnets[0], subnets[1])
}

func TestAllocateSubnets(t *testing.T) {
	t.Parallel()

	t.Run("sequential blocks", func(t *testing.T) {
		t.Parallel()
		cidrs, err := AllocateSubnets("192.168.0.0/16", 4)
		require.NoError(t, err)
		assert.Equal(t, []string{"192.168.1.0/24", "192.168.2.0/24", "192.168.3.0/24", "192.168.4.0/24"}, cidrs)
	})

	t.Run("255 zones fit", func(t *testing.T) {
		t.Parallel()
		cidrs, err := AllocateSubnets("192.168.0.0/16", 255)
		require.NoError(t, err)
		assert.Equal(t, "192.168.255.0/24", cidrs[254])
	})

	t.Run("256 zones do not", func(t *testing.T) {
		t.Parallel()
		_, err := AllocateSubnets("192.168.0.0/16", 256)
		require.Error(t, err)
	})
}

func TestInternetGatewayPhase_Success(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	var attached [2]string
	mockInfra.AttachInternetGatewayFunc = func(_ context.Context, gatewayID, vpcID string) error {
		attached = [2]string{gatewayID, vpcID}
		return nil
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewInternetGatewayPhase())

	require.NoError(t, err)
	assert.Equal(t, [2]string{"igw-1", "vpc-1"}, attached)
	assert.Equal(t, "igw-1", ctx.State.String(provisioning.KeyInternetGatewayID))
	assert.Equal(t, "oneliner-igw", fixture.TagsOf("igw-1")[tags.KeyName])
}

func TestRouteTablePhase_UsesFirstSubnetAndGateway(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	var routeVia, associatedWith string
	mockInfra.CreateDefaultRouteFunc = func(_ context.Context, _, gatewayID string) error {
		routeVia = gatewayID
		return nil
	}
	mockInfra.AssociateRouteTableFunc = func(_ context.Context, _, subnetID string) error {
		associatedWith = subnetID
		return nil
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewSubnetsPhase(), NewInternetGatewayPhase(), NewRouteTablePhase())

	require.NoError(t, err)
	assert.Equal(t, "igw-1", routeVia)
	assert.Equal(t, "subnet-1", associatedWith)
	assert.Equal(t, "rtb-1", ctx.State.String(provisioning.KeyRouteTableID))
	assert.Empty(t, fixture.TagsOf("rtb-1"), "route table is untagged by default")
}

func TestRouteTablePhase_TagOptIn(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	cfg := testutil.NewConfigBuilder().WithPrefix("demo").WithTagRouteTable(true).Build()
	ctx := testutil.NewProvisioningContext(t, cfg, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewSubnetsPhase(), NewInternetGatewayPhase(), NewRouteTablePhase())

	require.NoError(t, err)
	assert.Equal(t, "demo-rt", fixture.TagsOf("rtb-1")[tags.KeyName])
}

func TestRouteTablePhase_RouteError(t *testing.T) {
	t.Parallel()
	fixture := testutil.NewInfraFixture()
	mockInfra := fixture.NetworkOnly()
	mockInfra.CreateDefaultRouteFunc = func(_ context.Context, _, _ string) error {
		return errors.New("InvalidGatewayID.NotFound")
	}
	ctx := testutil.NewProvisioningContext(t, nil, mockInfra, nil)

	err := runPhases(ctx, NewVPCPhase(), NewSubnetsPhase(), NewInternetGatewayPhase(), NewRouteTablePhase())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "route-table phase failed")
	assert.Zero(t, fixture.CallCount("AssociateRouteTable"))
}
