// Package inventory provides the final provisioning phase, which writes the
// Ansible inventory describing how to reach the launched instance.
package inventory
