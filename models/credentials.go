package models

// AWSCredentials holds one temporary credential set returned by AWS SSO
// or by a chained assume-role call.
type AWSCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      string
}
