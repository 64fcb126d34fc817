package compute

import (
	"context"
	"encoding/base64"
	"os"

	"github.com/imamik/oneliner/internal/platform/aws"
	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/naming"
)

// InstancePhase launches the instance from the newest matching image and
// waits until its status checks pass.
type InstancePhase struct{}

// NewInstancePhase creates a new instance phase.
func NewInstancePhase() *InstancePhase {
	return &InstancePhase{}
}

// Name implements the provisioning.Phase interface.
func (p *InstancePhase) Name() string { return PhaseInstance }

// Requires implements the provisioning.Phase interface.
func (p *InstancePhase) Requires() []provisioning.StateKey {
	return []provisioning.StateKey{
		provisioning.KeySubnetIDs,
		provisioning.KeySecurityGroupID,
		provisioning.KeyKeyPairName,
	}
}

// Produces implements the provisioning.Phase interface.
func (p *InstancePhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyImageID, provisioning.KeyInstanceID}
}

// Provision implements the provisioning.Phase interface.
func (p *InstancePhase) Provision(ctx *provisioning.Context) error {
	cfg := ctx.Config.Instance
	name := naming.Instance(ctx.Config.Prefix)

	images, err := ctx.Infra.FindImages(ctx, cfg.ImageNamePattern, cfg.ImageOwners)
	if err != nil {
		return provisioning.ProviderError("describe images", err)
	}
	image, err := SelectLatestImage(images)
	if err != nil {
		return provisioning.StateErrorf("select image for %q: %v", cfg.ImageNamePattern, err)
	}
	if err := ctx.Record(provisioning.KeyImageID, image.ID); err != nil {
		return err
	}
	ctx.Observer.Printf("[%s] Using image %s (%s, created %s)", PhaseInstance, image.ID, image.Name, image.CreationDate)

	userData, err := LoadUserData(cfg.UserDataFile)
	if err != nil {
		return provisioning.IOError("read user data", err)
	}

	provisioning.LogResourceCreating(ctx.Observer, PhaseInstance, "instance", name)
	ids, err := ctx.Infra.RunInstance(ctx, aws.InstanceCreateOpts{
		ImageID:           image.ID,
		InstanceType:      cfg.Type,
		KeyName:           ctx.State.String(provisioning.KeyKeyPairName),
		SubnetID:          ctx.State.String(provisioning.KeySubnetIDs),
		SecurityGroupID:   ctx.State.String(provisioning.KeySecurityGroupID),
		UserData:          userData,
		AssociatePublicIP: true,
	})
	if err != nil {
		return provisioning.ProviderError("run instance", err)
	}
	if len(ids) == 0 {
		return provisioning.StateErrorf("no instances launched from image %s", image.ID)
	}
	instanceID := ids[0]
	ctx.Metrics.ResourceCreated("instance")
	if err := ctx.Record(provisioning.KeyInstanceID, instanceID); err != nil {
		return err
	}
	ctx.Observer.Printf("[%s] Launched instance %s (%s)", PhaseInstance, instanceID, cfg.Type)

	err = ctx.WaitUntil("instance", instanceID, ctx.Timeouts.InstancePollInterval, ctx.Timeouts.Instance,
		func(c context.Context) (bool, error) {
			return ctx.Infra.InstanceStatusOK(c, instanceID)
		})
	if err != nil {
		return err
	}

	if err := ctx.NameResource(instanceID, name); err != nil {
		return err
	}
	provisioning.LogResourceCreated(ctx.Observer, PhaseInstance, "instance", name, instanceID)
	return nil
}

// LoadUserData reads the bootstrap script verbatim and returns it base64
// encoded with the standard alphabet, as RunInstances expects.
func LoadUserData(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
