// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/oneliner/cmd/oneliner/handlers"
)

// Root returns the root command for the oneliner CLI.
//
// Running the root command provisions a new environment. No flag is required.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect oneliner.yaml)
//	--output-dir: Directory for the private key and inventory (default: config output_dir)
//	--log-level: debug, info, warn or error
//	--log-format: text or json
func Root() *cobra.Command {
	var opts handlers.ProvisionOptions

	cmd := &cobra.Command{
		Use:   "oneliner",
		Short: "Provision an EC2 instance for the sample app in one command",
		Long: `Provision a VPC, its networking and a single EC2 instance.

Every run creates new resources. On success the private key and an Ansible
inventory are written to the output directory, and the sample app URL and a
cleanup hint are printed. On failure the identifiers created so far are
printed and nothing is removed.

If no config file is specified, oneliner.yaml in the current directory is
used when present; otherwise built-in defaults apply.

AWS credentials and region come from the standard SDK chain
(AWS_PROFILE, AWS_ACCESS_KEY_ID, AWS_REGION, ...).

Examples:
  # Provision with defaults
  oneliner

  # Use a config file and write artifacts elsewhere
  oneliner -c staging.yaml --output-dir ./out`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: oneliner.yaml)")
	cmd.Flags().StringVar(&opts.OutputDir, "output-dir", "", "Directory for the private key and inventory")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(Version())

	return cmd
}
