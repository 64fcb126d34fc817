package compute

import (
	"fmt"

	"github.com/imamik/oneliner/internal/config"
	"github.com/imamik/oneliner/internal/platform/aws"
	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/util/keygen"
)

// KeyPairPhase replaces the fixed-name key pair and writes its private key.
type KeyPairPhase struct{}

// NewKeyPairPhase creates a new key pair phase.
func NewKeyPairPhase() *KeyPairPhase {
	return &KeyPairPhase{}
}

// Name implements the provisioning.Phase interface.
func (p *KeyPairPhase) Name() string { return PhaseKeyPair }

// Requires implements the provisioning.Phase interface.
func (p *KeyPairPhase) Requires() []provisioning.StateKey { return nil }

// Produces implements the provisioning.Phase interface.
func (p *KeyPairPhase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyKeyPairName, provisioning.KeyPrivateKeyPath}
}

// Provision implements the provisioning.Phase interface.
func (p *KeyPairPhase) Provision(ctx *provisioning.Context) error {
	kp := ctx.Config.KeyPair

	if err := deleteStaleKeyPair(ctx, kp); err != nil {
		return err
	}

	provisioning.LogResourceCreating(ctx.Observer, PhaseKeyPair, "key pair", kp.Name)
	var privateKey []byte
	var keyID string
	if kp.GenerateLocally {
		pair, err := keygen.GenerateRSAKeyPair(kp.Bits)
		if err != nil {
			return fmt.Errorf("failed to generate key pair %s: %w", kp.Name, err)
		}
		keyID, err = ctx.Infra.ImportKeyPair(ctx, kp.Name, pair.PublicKey)
		if err != nil {
			return provisioning.ProviderError("import key pair "+kp.Name, err)
		}
		ctx.Observer.Printf("[%s] Imported locally generated key %s", PhaseKeyPair, pair.Fingerprint)
		privateKey = pair.PrivateKey
	} else {
		created, err := ctx.Infra.CreateKeyPair(ctx, kp.Name)
		if err != nil {
			return provisioning.ProviderError("create key pair "+kp.Name, err)
		}
		if len(created.PrivateKey) == 0 {
			return provisioning.StateErrorf("key pair %s was created without private key material", kp.Name)
		}
		keyID, privateKey = created.ID, created.PrivateKey
	}
	ctx.Metrics.ResourceCreated("key-pair")
	if err := ctx.Record(provisioning.KeyKeyPairName, kp.Name); err != nil {
		return err
	}

	path, err := ctx.Artifacts.WritePrivateKey(kp.Name, privateKey)
	if err != nil {
		return provisioning.IOError("write private key for "+kp.Name, err)
	}
	if err := ctx.Record(provisioning.KeyPrivateKeyPath, path); err != nil {
		return err
	}
	ctx.Observer.Printf("[%s] Private key written to %s", PhaseKeyPair, path)

	provisioning.LogResourceCreated(ctx.Observer, PhaseKeyPair, "key pair", kp.Name, keyID)
	return nil
}

// deleteStaleKeyPair removes a key pair left behind by an earlier run.
// Under the tolerate-missing policy a "not found" error is ignored.
func deleteStaleKeyPair(ctx *provisioning.Context, kp config.KeyPairConfig) error {
	provisioning.LogResourceDeleting(ctx.Observer, PhaseKeyPair, "key pair", kp.Name)
	err := ctx.Infra.DeleteKeyPair(ctx, kp.Name)
	switch {
	case err == nil:
		provisioning.LogResourceDeleted(ctx.Observer, PhaseKeyPair, "key pair", kp.Name)
		return nil
	case kp.DeletePolicy != config.DeletePolicyStrict && aws.IsNotFound(err):
		ctx.Observer.Printf("[%s] No previous key pair %s to delete", PhaseKeyPair, kp.Name)
		return nil
	default:
		return provisioning.ProviderError("delete key pair "+kp.Name, err)
	}
}
