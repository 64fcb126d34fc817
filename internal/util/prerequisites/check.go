// Package prerequisites checks for the client tools that consume the
// generated artifacts. Nothing in provisioning depends on them, so missing
// tools are reported as hints rather than failures.
package prerequisites

import (
	"os/exec"
)

// Tool represents a client tool that may be useful after provisioning.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// DefaultTools returns the tools the generated key and inventory are meant for.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "ssh",
			Description: "Connects to the instance with the generated private key",
			InstallURL:  "https://www.openssh.com/portable.html",
		},
		{
			Name:        "ansible-playbook",
			Description: "Deploys the sample application using the generated inventory",
			InstallURL:  "https://docs.ansible.com/ansible/latest/installation_guide/",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Check reports which of the specified tools are available in PATH.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		if path, err := lookPath(tool.Name); err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault checks the default tools.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}
