package aws

import (
	"context"
	"fmt"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// CreateSecurityGroup creates a security group in the VPC.
func (c *RealClient) CreateSecurityGroup(ctx context.Context, name, description, vpcID string) (string, error) {
	out, err := c.ec2.CreateSecurityGroup(ctx, &ec2.CreateSecurityGroupInput{
		GroupName:   awsStd.String(name),
		Description: awsStd.String(description),
		VpcId:       awsStd.String(vpcID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create security group %s: %w", name, err)
	}
	if awsStd.ToString(out.GroupId) == "" {
		return "", fmt.Errorf("create security group %s: %w", name, ErrMissingRecord)
	}
	return awsStd.ToString(out.GroupId), nil
}

// AuthorizeIngress adds the rules to the group in a single request, one
// permission per rule, in order.
func (c *RealClient) AuthorizeIngress(ctx context.Context, groupID string, rules []IngressRule) error {
	if len(rules) == 0 {
		return nil
	}

	permissions := make([]types.IpPermission, 0, len(rules))
	for _, r := range rules {
		permissions = append(permissions, types.IpPermission{
			IpProtocol: awsStd.String(r.Protocol),
			FromPort:   awsStd.Int32(r.Port),
			ToPort:     awsStd.Int32(r.Port),
			IpRanges:   []types.IpRange{{CidrIp: awsStd.String(r.CIDR)}},
		})
	}

	_, err := c.ec2.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
		GroupId:       awsStd.String(groupID),
		IpPermissions: permissions,
	})
	if err != nil {
		return fmt.Errorf("failed to authorize ingress on %s: %w", groupID, err)
	}
	return nil
}
