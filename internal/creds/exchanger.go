package creds

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sso"

	"github.com/ssotools/ssoctl/models"
)

// RoleExchanger fetches temporary role credentials from AWS SSO. One call
// per profile, no retries and no caching; the access token was already
// validated by the device flow, so any failure here is fatal to the run.
type RoleExchanger struct {
	NewClient func(region string) SSOAPI
}

func NewRoleExchanger() *RoleExchanger {
	return &RoleExchanger{
		NewClient: func(region string) SSOAPI {
			return sso.NewFromConfig(aws.Config{Region: region})
		},
	}
}

func (e *RoleExchanger) Exchange(ctx context.Context, region, accessToken, accountID, role string) (*models.AWSCredentials, error) {
	out, err := e.NewClient(region).GetRoleCredentials(ctx, &sso.GetRoleCredentialsInput{
		AccessToken: aws.String(accessToken),
		AccountId:   aws.String(accountID),
		RoleName:    aws.String(role),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get role credentials for account %s role %s: %w", accountID, role, err)
	}

	rc := out.RoleCredentials
	if rc == nil {
		return nil, fmt.Errorf("no role credentials returned for account %s role %s", accountID, role)
	}

	return &models.AWSCredentials{
		AccessKeyID:     aws.ToString(rc.AccessKeyId),
		SecretAccessKey: aws.ToString(rc.SecretAccessKey),
		SessionToken:    aws.ToString(rc.SessionToken),
		Expiration:      time.UnixMilli(rc.Expiration).UTC().Format(time.RFC3339),
	}, nil
}
