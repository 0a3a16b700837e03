package oidc

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
)

// SSOOIDCAPI is the subset of the SSO OIDC client used by the device
// authorization flow.
type SSOOIDCAPI interface {
	RegisterClient(ctx context.Context, params *ssooidc.RegisterClientInput, optFns ...func(*ssooidc.Options)) (*ssooidc.RegisterClientOutput, error)
	StartDeviceAuthorization(ctx context.Context, params *ssooidc.StartDeviceAuthorizationInput, optFns ...func(*ssooidc.Options)) (*ssooidc.StartDeviceAuthorizationOutput, error)
	CreateToken(ctx context.Context, params *ssooidc.CreateTokenInput, optFns ...func(*ssooidc.Options)) (*ssooidc.CreateTokenOutput, error)
}

// ConsoleOpener opens the verification URL in whatever browser context is
// available. Implementations return an error when no browser can be opened;
// callers fall back to printing the URL.
type ConsoleOpener interface {
	Open(url string) error
}

// Authenticator yields one SSO access token for a start URL and region.
type Authenticator interface {
	Authenticate(ctx context.Context, startURL, region string) (string, error)
}
