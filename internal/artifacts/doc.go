// Package artifacts writes the connection artifacts of a provisioning run.
//
// Writer stores the private key and inventory in the output directory.
// S3Mirror optionally copies artifacts to an S3 bucket under a per-run key.
package artifacts
