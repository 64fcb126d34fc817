// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/oneliner/internal/artifacts"
	"github.com/imamik/oneliner/internal/config"
	"github.com/imamik/oneliner/internal/logging"
	"github.com/imamik/oneliner/internal/orchestration"
	"github.com/imamik/oneliner/internal/platform/aws"
	"github.com/imamik/oneliner/internal/provisioning"
	"github.com/imamik/oneliner/internal/ui/summary"
	"github.com/imamik/oneliner/internal/util/prerequisites"
)

// cleanupScript is the teardown helper the cleanup hint points at.
const cleanupScript = "./cleanup.sh"

// Reconciler interface for testing - matches orchestration.Reconciler.
type Reconciler interface {
	Reconcile(ctx context.Context) (*orchestration.Result, error)
}

// ProvisionOptions holds the root command flags.
type ProvisionOptions struct {
	ConfigPath string
	OutputDir  string
	LogLevel   string
	LogFormat  string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig loads config from file or defaults.
	loadConfig = config.Load

	// loadTimeouts reads polling settings from the environment.
	loadTimeouts = config.LoadTimeouts

	// newLogger builds the process logger.
	newLogger = logging.New

	// newInfraClient creates the EC2 client.
	newInfraClient = func(ctx context.Context, cfg *config.Config, timeouts *config.Timeouts) (aws.InfrastructureManager, error) {
		return aws.NewRealClient(ctx, cfg.Region,
			aws.WithIPEchoURL(cfg.IPEchoURL),
			aws.WithIPEchoTimeout(timeouts.IPEcho),
		)
	}

	// newReconciler creates the provisioning reconciler.
	newReconciler = func(infra aws.InfrastructureManager, w provisioning.ArtifactWriter, cfg *config.Config, opts ...orchestration.Option) Reconciler {
		return orchestration.NewReconciler(infra, w, cfg, opts...)
	}

	// newS3Mirror creates the inventory mirror for a run.
	newS3Mirror = artifacts.NewS3MirrorFromConfig

	// checkDefaultPrereqs looks for the client tools on PATH.
	checkDefaultPrereqs = prerequisites.CheckDefault

	// stdout receives the summary, the app URL and the cleanup hint.
	stdout io.Writer = os.Stdout

	// stderr receives logs.
	stderr io.Writer = os.Stderr

	// isTerminal reports whether stdout is styled.
	isTerminal = isInteractiveTTY
)

// Provision runs one provisioning pass.
//
// The workflow:
//  1. Loads configuration (flag, oneliner.yaml, or defaults)
//  2. Warns about missing client tools (ssh, ansible-playbook)
//  3. Creates the EC2 client from the AWS SDK default chain
//  4. Runs every provisioning phase in order, stopping at the first failure
//  5. Prints a summary, then the app URL and cleanup hint on success
//
// SIGINT and SIGTERM cancel the run. Resources created before a failure or
// cancellation are listed but not removed.
func Provision(ctx context.Context, opts ProvisionOptions) error {
	log, err := newLogger(logging.Options{
		Level:  opts.LogLevel,
		Format: opts.LogFormat,
		Writer: stderr,
	})
	if err != nil {
		return err
	}
	ctx = logr.NewContext(ctx, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}

	prereqs := checkDefaultPrereqs()
	for _, tool := range prereqs.Missing {
		log.Info("Client tool not found on PATH", "tool", tool.Name, "install", tool.InstallURL)
	}

	timeouts := loadTimeouts()
	infra, err := newInfraClient(ctx, cfg, timeouts)
	if err != nil {
		return fmt.Errorf("failed to initialize EC2 client: %w", err)
	}

	start := time.Now()
	reconciler := newReconciler(infra, artifacts.NewWriter(cfg.OutputDir), cfg, reconcilerOptions(cfg, timeouts)...)
	result, runErr := reconciler.Reconcile(ctx)

	report := buildReport(infra, result, runErr, time.Since(start))
	report.Missing = prereqs.Missing
	writeMetrics(log, cfg, result)

	fmt.Fprint(stdout, summary.Render(report, isTerminal()))
	fmt.Fprintln(stdout)

	if runErr != nil {
		printCleanupHint(result)
		return fmt.Errorf("provisioning failed: %w", runErr)
	}

	printAppURL(result, cfg)
	printCleanupHint(result)
	return nil
}

func reconcilerOptions(cfg *config.Config, timeouts *config.Timeouts) []orchestration.Option {
	opts := []orchestration.Option{orchestration.WithTimeouts(timeouts)}
	if cfg.Inventory.S3.Enabled() {
		s3cfg := cfg.Inventory.S3
		opts = append(opts, orchestration.WithMirror(func(ctx context.Context, runID string) (provisioning.ArtifactMirror, error) {
			mirror, err := newS3Mirror(ctx, s3cfg, runID)
			if err != nil {
				return nil, err
			}
			return mirror, nil
		}))
	}
	return opts
}

func buildReport(infra aws.InfrastructureManager, result *orchestration.Result, runErr error, took time.Duration) summary.Report {
	report := summary.Report{Duration: took, Err: runErr}
	if r, ok := infra.(interface{ Region() string }); ok {
		report.Region = r.Region()
	}
	if result != nil {
		report.RunID = result.RunID
		report.Entries = result.State.Snapshot()
	}

	var phaseErr *provisioning.PhaseError
	if errors.As(runErr, &phaseErr) {
		report.FailedPhase = phaseErr.Phase
		report.Err = phaseErr.Err
	}
	return report
}

// writeMetrics dumps run metrics when a metrics file is configured. Failures
// are logged and never change the outcome of the run.
func writeMetrics(log logr.Logger, cfg *config.Config, result *orchestration.Result) {
	if cfg.MetricsFile == "" || result == nil {
		return
	}
	if err := result.Metrics.WriteToTextfile(cfg.MetricsFile); err != nil {
		log.Error(err, "Failed to write metrics", "path", cfg.MetricsFile)
	}
}

func printAppURL(result *orchestration.Result, cfg *config.Config) {
	ip := result.State.String(provisioning.KeyPublicIP)
	fmt.Fprintf(stdout, "###### SAMPLE APP URL: http://%s:%d ######\n", ip, cfg.AppPort)
}

// printCleanupHint prints the teardown command for whatever was created.
// Nothing is printed when no VPC exists.
func printCleanupHint(result *orchestration.Result) {
	if result == nil {
		return
	}
	vpcID := result.State.String(provisioning.KeyVPCID)
	if vpcID == "" {
		return
	}
	args := []string{cleanupScript, vpcID}
	if instanceID := result.State.String(provisioning.KeyInstanceID); instanceID != "" {
		args = append(args, instanceID)
	}
	fmt.Fprintf(stdout, "CLEANUP: %s\n", strings.Join(args, " "))
}

func isInteractiveTTY() bool {
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
