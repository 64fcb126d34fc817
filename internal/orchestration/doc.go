// Package orchestration runs a complete provisioning run.
//
// The Reconciler wires the phases from the internal/provisioning subpackages
// into one pipeline, in a fixed order:
//  1. Infrastructure - VPC, DHCP options, subnets, internet gateway,
//     route table, security group
//  2. Compute - key pair, instance, public IP
//  3. Inventory - Ansible inventory file and optional S3 copy
//
// # Usage
//
//	reconciler := orchestration.NewReconciler(infraClient, artifacts.NewWriter(dir), cfg)
//	result, err := reconciler.Reconcile(ctx)
//
// Every run creates new resources. Nothing is looked up from earlier runs and
// nothing is removed when a phase fails; result.State holds the identifiers
// created before the failure.
package orchestration
