// Package s3 provides a minimal client for Amazon S3 and S3-compatible stores.
//
// It is used to mirror generated inventory files to a bucket. Credentials
// come from the AWS SDK default chain, or from static keys when talking to
// a custom endpoint.
package s3
