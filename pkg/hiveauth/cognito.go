/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package hiveauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/juju/errors"
)

// wire format of the Cognito InitiateAuth call, x-amz-json-1.1

type initiateAuthRequest struct {
	AuthFlow       string            `json:"AuthFlow"`
	ClientId       string            `json:"ClientId"`
	AuthParameters map[string]string `json:"AuthParameters"`
}

type initiateAuthResponse struct {
	AuthenticationResult authenticationResult `json:"AuthenticationResult"`
}

type authenticationResult struct {
	IDToken     string `json:"IdToken"`
	AccessToken string `json:"AccessToken"`
	ExpiresIn   int    `json:"ExpiresIn"`
	TokenType   string `json:"TokenType"`
}

type cognitoError struct {
	Type    string `json:"__type"`
	Message string `json:"message"`
}

func (e *cognitoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (s *Session) initiateAuth(ctx context.Context) (authenticationResult, error) {
	body, err := json.Marshal(initiateAuthRequest{
		AuthFlow: authFlowRefreshToken,
		ClientId: s.clientID,
		AuthParameters: map[string]string{
			authParamRefreshToken: s.tokens.RefreshToken,
		},
	})
	if err != nil {
		return authenticationResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return authenticationResult{}, err
	}
	req.Header.Set("Content-Type", amzJSONContentType)
	req.Header.Set("X-Amz-Target", amzTargetInitiateAuth)

	resp, err := s.client.Do(req)
	if err != nil {
		return authenticationResult{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return authenticationResult{}, err
	}

	if resp.StatusCode != http.StatusOK {
		cogErr := &cognitoError{}
		if err := json.Unmarshal(respBody, cogErr); err == nil && cogErr.Type != "" {
			return authenticationResult{}, cogErr
		}
		return authenticationResult{}, errors.Errorf(errUnexpectedCognitoStatus, resp.StatusCode, truncate(respBody))
	}

	var parsed initiateAuthResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return authenticationResult{}, err
	}
	if parsed.AuthenticationResult.IDToken == "" {
		return authenticationResult{}, errors.New(errEmptyAuthResult)
	}
	return parsed.AuthenticationResult, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodyLen {
		return string(body[:maxErrorBodyLen]) + "..."
	}
	return string(body)
}
