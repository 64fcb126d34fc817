package aws

import (
	"context"
	"fmt"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// DeleteKeyPair deletes the key pair with the given name.
// A missing key pair surfaces as an error satisfying IsNotFound.
func (c *RealClient) DeleteKeyPair(ctx context.Context, name string) error {
	_, err := c.ec2.DeleteKeyPair(ctx, &ec2.DeleteKeyPairInput{
		KeyName: awsStd.String(name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete key pair %s: %w", name, err)
	}
	return nil
}

// CreateKeyPair creates a key pair and returns its private key material.
func (c *RealClient) CreateKeyPair(ctx context.Context, name string) (*KeyPair, error) {
	out, err := c.ec2.CreateKeyPair(ctx, &ec2.CreateKeyPairInput{
		KeyName: awsStd.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair %s: %w", name, err)
	}
	if awsStd.ToString(out.KeyMaterial) == "" {
		return nil, fmt.Errorf("create key pair %s: %w", name, ErrMissingRecord)
	}
	return &KeyPair{
		Name:       awsStd.ToString(out.KeyName),
		ID:         awsStd.ToString(out.KeyPairId),
		PrivateKey: []byte(awsStd.ToString(out.KeyMaterial)),
	}, nil
}

// ImportKeyPair registers an OpenSSH public key under name.
func (c *RealClient) ImportKeyPair(ctx context.Context, name string, publicKey []byte) (string, error) {
	out, err := c.ec2.ImportKeyPair(ctx, &ec2.ImportKeyPairInput{
		KeyName:           awsStd.String(name),
		PublicKeyMaterial: publicKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to import key pair %s: %w", name, err)
	}
	return awsStd.ToString(out.KeyPairId), nil
}
