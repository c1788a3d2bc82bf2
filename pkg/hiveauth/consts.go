/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package hiveauth

import "time"

// nolint
const (
	// the Cognito user pool the Hive mobile and web clients talk to
	DefaultRegion   = "eu-west-1"
	DefaultClientID = "3rl4i0ajrmtdm8sbre54p9dvd9"

	cognitoEndpointFmt = "https://cognito-idp.%s.amazonaws.com/"

	amzJSONContentType    = "application/x-amz-json-1.1"
	amzTargetInitiateAuth = "AWSCognitoIdentityProviderService.InitiateAuth"
	authFlowRefreshToken  = "REFRESH_TOKEN_AUTH"
	authParamRefreshToken = "REFRESH_TOKEN"

	notAuthorizedException = "NotAuthorizedException"

	// tokens are refreshed when they are this close to expiring
	refreshWindow = 5 * time.Minute

	// assumed token lifetime when the ID token carries no usable exp
	fallbackTokenTTL = 55 * time.Minute

	requestTimeout = 30 * time.Second

	// the session file holds secrets
	sessionFileMode = 0600

	maxErrorBodyLen = 200
)
