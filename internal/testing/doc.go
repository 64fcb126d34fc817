// Package testing provides test utilities, builders, and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - ConfigBuilder: Fluent builder for creating test configurations
//   - InfraFixture: Pre-configured mock infrastructure that records calls and tags
//   - MockArtifactWriter, MockArtifactMirror: testify mocks for artifact sinks
//   - NewProvisioningContext: a provisioning context with fast polling and a discarding logger
//
// Usage:
//
//	cfg := testing.NewConfigBuilder().
//	    WithPrefix("test").
//	    WithVPCCIDR("10.0.0.0/16").
//	    Build()
//
//	fixture := testing.NewInfraFixture()
//	mockInfra := fixture.SuccessfulProvisioning()
package testing
