package aws

import (
	"context"
	"fmt"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/oneliner/internal/util/tags"
)

// TagResource applies tags to a resource. Keys are sent in sorted order.
func (c *RealClient) TagResource(ctx context.Context, resourceID string, resourceTags map[string]string) error {
	if len(resourceTags) == 0 {
		return nil
	}

	ec2Tags := make([]types.Tag, 0, len(resourceTags))
	for _, k := range tags.SortedKeys(resourceTags) {
		ec2Tags = append(ec2Tags, types.Tag{Key: awsStd.String(k), Value: awsStd.String(resourceTags[k])})
	}

	_, err := c.ec2.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: []string{resourceID},
		Tags:      ec2Tags,
	})
	if err != nil {
		return fmt.Errorf("failed to tag %s: %w", resourceID, err)
	}
	return nil
}
