package aws

import (
	"context"
	"fmt"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// FindImages returns the images whose name matches pattern.
func (c *RealClient) FindImages(ctx context.Context, pattern string, owners []string) ([]Image, error) {
	input := &ec2.DescribeImagesInput{
		Filters: []types.Filter{
			{Name: awsStd.String("name"), Values: []string{pattern}},
		},
	}
	if len(owners) > 0 {
		input.Owners = owners
	}

	out, err := c.ec2.DescribeImages(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to describe images matching %q: %w", pattern, err)
	}

	images := make([]Image, 0, len(out.Images))
	for _, img := range out.Images {
		images = append(images, Image{
			ID:           awsStd.ToString(img.ImageId),
			Name:         awsStd.ToString(img.Name),
			CreationDate: awsStd.ToString(img.CreationDate),
		})
	}
	return images, nil
}
