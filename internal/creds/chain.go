package creds

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/ssotools/ssoctl/internal/config"
	"github.com/ssotools/ssoctl/models"
)

const sessionName = "ssoctl"

// RoleChainer assumes each of a profile's chained roles using the base
// profile's freshly written credentials, writing the derived credential
// sets into the store under the chained profiles' names.
type RoleChainer struct {
	NewClient STSClientFactory
}

func NewRoleChainer() *RoleChainer {
	return &RoleChainer{
		NewClient: func(region string, provider aws.CredentialsProvider) STSAPI {
			return sts.NewFromConfig(aws.Config{Region: region, Credentials: provider})
		},
	}
}

func (c *RoleChainer) Chain(ctx context.Context, store *Store, cfg *config.Config, region, profileName string) error {
	profile, ok := cfg.Profile(profileName)
	if !ok {
		return fmt.Errorf("profile %q not found in configuration", profileName)
	}

	base, err := store.Credentials(profileName)
	if err != nil {
		return err
	}

	provider := awscreds.NewStaticCredentialsProvider(
		base.AccessKeyID, base.SecretAccessKey, base.SessionToken)
	client := c.NewClient(region, provider)

	for _, target := range profile.Assumes {
		targetProfile, ok := cfg.Profile(target)
		if !ok {
			return fmt.Errorf("assumed profile %q of profile %q not found in configuration", target, profileName)
		}
		if targetProfile.AccountID == "" || targetProfile.Role == "" {
			return fmt.Errorf("assumed profile %q is missing account_id or role", target)
		}

		roleARN := fmt.Sprintf("arn:aws:iam::%s:role/%s", targetProfile.AccountID, targetProfile.Role)
		out, err := client.AssumeRole(ctx, &sts.AssumeRoleInput{
			RoleArn:         aws.String(roleARN),
			RoleSessionName: aws.String(sessionName),
		})
		if err != nil {
			return fmt.Errorf("failed to assume role %s for profile %s: %w", roleARN, target, err)
		}

		assumed := out.Credentials
		if assumed == nil {
			return fmt.Errorf("no credentials returned assuming role %s", roleARN)
		}

		store.EnsureSection(target)
		store.SetCredentials(target, &models.AWSCredentials{
			AccessKeyID:     aws.ToString(assumed.AccessKeyId),
			SecretAccessKey: aws.ToString(assumed.SecretAccessKey),
			SessionToken:    aws.ToString(assumed.SessionToken),
			Expiration:      aws.ToTime(assumed.Expiration).UTC().Format(time.RFC3339),
		})
	}

	return nil
}
