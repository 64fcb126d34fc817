package compute

import "github.com/imamik/oneliner/internal/provisioning"

// Phase names.
const (
	PhaseKeyPair  = "key-pair"
	PhaseInstance = "instance"
	PhasePublicIP = "public-ip"
)

// Phases returns the compute phases in execution order.
func Phases() []provisioning.Phase {
	return []provisioning.Phase{
		NewKeyPairPhase(),
		NewInstancePhase(),
		NewPublicIPPhase(),
	}
}
