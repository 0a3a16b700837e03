package creds

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sso"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/ssotools/ssoctl/internal/config"
	"github.com/ssotools/ssoctl/models"
)

// SSOAPI is the subset of the SSO client used for role credential exchange.
type SSOAPI interface {
	GetRoleCredentials(ctx context.Context, params *sso.GetRoleCredentialsInput, optFns ...func(*sso.Options)) (*sso.GetRoleCredentialsOutput, error)
}

// STSAPI is the subset of the STS client used for chained role assumption.
type STSAPI interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// Exchanger swaps an SSO access token for one role's temporary credentials.
type Exchanger interface {
	Exchange(ctx context.Context, region, accessToken, accountID, role string) (*models.AWSCredentials, error)
}

// Chainer populates additional profile sections by assuming each of the
// named profile's chained roles with its freshly written credentials.
type Chainer interface {
	Chain(ctx context.Context, store *Store, cfg *config.Config, region, profileName string) error
}

// STSClientFactory builds an STS client bound to a region and a fixed
// credential set.
type STSClientFactory func(region string, provider aws.CredentialsProvider) STSAPI
