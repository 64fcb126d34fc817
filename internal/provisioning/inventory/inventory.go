package inventory

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/imamik/oneliner/internal/config"
	"github.com/imamik/oneliner/internal/provisioning"
)

// PhaseInventory is the name of the inventory phase.
const PhaseInventory = "inventory"

// mirrorName is the artifact name the inventory is mirrored under.
const mirrorName = "inventory"

// Format renders the single-line inventory record for a host at ip. Ansible
// resolves a relative keyPath against its working directory, so keyPath is
// the path the key was written to, not a path relative to the inventory.
func Format(cfg config.InventoryConfig, ip, keyPath string) string {
	return fmt.Sprintf("%s ansible_user=%s ansible_ssh_host=%s ansible_ssh_port=%d ansible_ssh_private_key_file=%s",
		cfg.Alias, cfg.User, ip, cfg.SSHPort, keyFileRef(keyPath))
}

func keyFileRef(path string) string {
	if filepath.IsAbs(path) || strings.HasPrefix(path, ".") {
		return path
	}
	return "./" + path
}

// Phase writes the inventory file and, when a mirror is configured, uploads
// a copy of it.
type Phase struct{}

// NewPhase creates a new inventory phase.
func NewPhase() *Phase {
	return &Phase{}
}

// Name implements the provisioning.Phase interface.
func (p *Phase) Name() string { return PhaseInventory }

// Requires implements the provisioning.Phase interface.
func (p *Phase) Requires() []provisioning.StateKey {
	return []provisioning.StateKey{
		provisioning.KeyPublicIP,
		provisioning.KeyPrivateKeyPath,
	}
}

// Produces implements the provisioning.Phase interface. The mirror location
// is recorded as well when a mirror is configured.
func (p *Phase) Produces() []provisioning.StateKey {
	return []provisioning.StateKey{provisioning.KeyInventoryPath}
}

// Provision implements the provisioning.Phase interface.
func (p *Phase) Provision(ctx *provisioning.Context) error {
	ip := ctx.State.String(provisioning.KeyPublicIP)
	keyPath := ctx.State.String(provisioning.KeyPrivateKeyPath)
	content := Format(ctx.Config.Inventory, ip, keyPath)

	path, err := ctx.Artifacts.WriteInventory(content)
	if err != nil {
		return provisioning.IOError("write inventory", err)
	}
	if err := ctx.Record(provisioning.KeyInventoryPath, path); err != nil {
		return err
	}
	ctx.Observer.Printf("[%s] Wrote inventory to %s", PhaseInventory, path)

	if ctx.Mirror == nil {
		return nil
	}
	location, err := ctx.Mirror.Mirror(ctx, mirrorName, []byte(content))
	if err != nil {
		return provisioning.ProviderError("mirror inventory", err)
	}
	if err := ctx.Record(provisioning.KeyInventoryMirror, location); err != nil {
		return err
	}
	ctx.Observer.Printf("[%s] Mirrored inventory to %s", PhaseInventory, location)
	return nil
}
