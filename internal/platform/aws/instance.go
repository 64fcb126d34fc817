package aws

import (
	"context"
	"fmt"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// RunInstance launches exactly one instance with a single network interface.
func (c *RealClient) RunInstance(ctx context.Context, opts InstanceCreateOpts) ([]string, error) {
	input := &ec2.RunInstancesInput{
		ImageId:      awsStd.String(opts.ImageID),
		InstanceType: types.InstanceType(opts.InstanceType),
		KeyName:      awsStd.String(opts.KeyName),
		MinCount:     awsStd.Int32(1),
		MaxCount:     awsStd.Int32(1),
		NetworkInterfaces: []types.InstanceNetworkInterfaceSpecification{
			{
				DeviceIndex:              awsStd.Int32(0),
				SubnetId:                 awsStd.String(opts.SubnetID),
				Groups:                   []string{opts.SecurityGroupID},
				AssociatePublicIpAddress: awsStd.Bool(opts.AssociatePublicIP),
			},
		},
	}
	if opts.UserData != "" {
		input.UserData = awsStd.String(opts.UserData)
	}

	out, err := c.ec2.RunInstances(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to run instance from image %s: %w", opts.ImageID, err)
	}

	ids := make([]string, 0, len(out.Instances))
	for _, inst := range out.Instances {
		if id := awsStd.ToString(inst.InstanceId); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// InstanceStatusOK reports whether the instance status summary is "ok".
func (c *RealClient) InstanceStatusOK(ctx context.Context, instanceID string) (bool, error) {
	out, err := c.ec2.DescribeInstanceStatus(ctx, &ec2.DescribeInstanceStatusInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return false, fmt.Errorf("failed to describe status of instance %s: %w", instanceID, err)
	}
	for _, s := range out.InstanceStatuses {
		if awsStd.ToString(s.InstanceId) != instanceID || s.InstanceStatus == nil {
			continue
		}
		return s.InstanceStatus.Status == types.SummaryStatusOk, nil
	}
	return false, nil
}

// InstancePublicIP returns the public IPv4 address of the instance.
func (c *RealClient) InstancePublicIP(ctx context.Context, instanceID string) (string, error) {
	out, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe instance %s: %w", instanceID, err)
	}
	if len(out.Reservations) == 0 {
		return "", fmt.Errorf("describe instance %s: no reservation: %w", instanceID, ErrMissingRecord)
	}
	if len(out.Reservations[0].Instances) == 0 {
		return "", fmt.Errorf("describe instance %s: no instance in reservation: %w", instanceID, ErrMissingRecord)
	}
	ip := awsStd.ToString(out.Reservations[0].Instances[0].PublicIpAddress)
	if ip == "" {
		return "", fmt.Errorf("describe instance %s: no public ip address: %w", instanceID, ErrMissingRecord)
	}
	return ip, nil
}
