package provisioning

import (
	"errors"
	"fmt"
	"slices"
)

// StateKey names a value recorded by a provisioning phase.
type StateKey string

// Keys recorded during a provisioning run, in the order phases produce them.
const (
	KeyVPCID             StateKey = "vpc_id"
	KeyDHCPOptionsID     StateKey = "dhcp_options_id"
	KeySubnetIDs         StateKey = "subnet_ids"
	KeyInternetGatewayID StateKey = "internet_gateway_id"
	KeyRouteTableID      StateKey = "route_table_id"
	KeySecurityGroupID   StateKey = "security_group_id"
	KeyCallerIP          StateKey = "caller_ip"
	KeyKeyPairName       StateKey = "key_pair_name"
	KeyPrivateKeyPath    StateKey = "private_key_path"
	KeyImageID           StateKey = "image_id"
	KeyInstanceID        StateKey = "instance_id"
	KeyPublicIP          StateKey = "public_ip"
	KeyInventoryPath     StateKey = "inventory_path"
	KeyInventoryMirror   StateKey = "inventory_mirror"
)

// ErrAlreadySet is returned when a key is written a second time.
var ErrAlreadySet = errors.New("state key already set")

// Entry is a single recorded key and its values.
type Entry struct {
	Key    StateKey
	Values []string
}

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results. Every key is write-once.
type State struct {
	values map[StateKey][]string
	order  []StateKey
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{
		values: make(map[StateKey][]string),
	}
}

// SetString records a single value for key.
func (s *State) SetString(key StateKey, value string) error {
	return s.SetStrings(key, []string{value})
}

// SetStrings records an ordered list of values for key.
// The first write wins: a second write returns ErrAlreadySet and leaves
// the recorded values untouched.
func (s *State) SetStrings(key StateKey, values []string) error {
	if _, ok := s.values[key]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadySet, key)
	}
	if len(values) == 0 {
		return fmt.Errorf("no value given for %s", key)
	}
	for i, v := range values {
		if v == "" {
			return fmt.Errorf("empty value at index %d for %s", i, key)
		}
	}
	s.values[key] = slices.Clone(values)
	s.order = append(s.order, key)
	return nil
}

// Has reports whether key has been recorded.
func (s *State) Has(key StateKey) bool {
	_, ok := s.values[key]
	return ok
}

// String returns the first value recorded for key, or "" if unset.
func (s *State) String(key StateKey) string {
	if v := s.values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Strings returns a copy of all values recorded for key.
func (s *State) Strings(key StateKey) []string {
	return slices.Clone(s.values[key])
}

// Snapshot returns every recorded entry in write order.
func (s *State) Snapshot() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for _, k := range s.order {
		entries = append(entries, Entry{Key: k, Values: slices.Clone(s.values[k])})
	}
	return entries
}
