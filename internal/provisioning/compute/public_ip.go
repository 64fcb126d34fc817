package compute

import (
	"github.com/imamik/oneliner/internal/provisioning"
)

// PublicIPPhase records the public IPv4 address of the launched instance.
type PublicIPPhase struct{}

// NewPublicIPPhase creates a new public IP phase.
func NewPublicIPPhase() *PublicIPPhase {
	return &PublicIPPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *PublicIPPhase) Name() string { return PhasePublicIP }

// Requires implements the provisioning.Phase interface.
func (p *PublicIPPhase) Requires() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyInstanceID}
}

// Produces implements the provisioning.Phase interface.
func (p *PublicIPPhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyPublicIP}
}

// Provision implements the provisioning.Phase interface.
func (p *PublicIPPhase) Provision(ctx *provisioning.Context) error {
	instanceID := ctx.State.String(provisioning.KeyInstanceID)

	ip, err := ctx.Infra.InstancePublicIP(ctx, instanceID)
	if err != nil {
		return provisioning.ProviderError("describe public IP of "+instanceID, err)
	}
	if err := ctx.Record(provisioning.KeyPublicIP, ip); err != nil {
		return err
	}
	ctx.Observer.Printf("[%s] Instance %s is reachable at %s", PhasePublicIP, instanceID, ip)
	return nil
}
