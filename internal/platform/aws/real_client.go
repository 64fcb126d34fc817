package aws

import (
	"context"
	"fmt"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/imamik/oneliner/pkg/cloud"
)

// DefaultIPEchoURL returns the caller's address as a plaintext body.
const DefaultIPEchoURL = "http://ipecho.net/plain"

// RealClient implements InfrastructureManager using the EC2 API.
type RealClient struct {
	ec2        cloud.EC2API
	region     string
	httpClient *http.Client
	ipEchoURL  string
}

var _ InfrastructureManager = (*RealClient)(nil)

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEC2Client sets the EC2 API implementation (useful for testing).
// When set, no SDK configuration is loaded.
func WithEC2Client(api cloud.EC2API) ClientOption {
	return func(c *RealClient) {
		c.ec2 = api
	}
}

// WithHTTPClient sets a custom HTTP client for the IP echo request.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithIPEchoURL overrides the IP echo endpoint.
func WithIPEchoURL(url string) ClientOption {
	return func(c *RealClient) {
		c.ipEchoURL = url
	}
}

// WithIPEchoTimeout bounds the IP echo request.
func WithIPEchoTimeout(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// NewRealClient creates a RealClient. Unless WithEC2Client is given, the AWS
// SDK default configuration chain is loaded; an empty region defers to it
// (AWS_REGION, AWS_DEFAULT_REGION, shared config).
func NewRealClient(ctx context.Context, region string, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{
		region:     region,
		httpClient: http.DefaultClient,
		ipEchoURL:  DefaultIPEchoURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.ec2 != nil {
		return c, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("AWS region not configured: set region in the config file or AWS_REGION")
	}

	c.region = cfg.Region
	c.ec2 = ec2.NewFromConfig(cfg)
	return c, nil
}

// Region returns the region the client talks to. It is empty when the EC2
// client was injected without a region.
func (c *RealClient) Region() string {
	return c.region
}
