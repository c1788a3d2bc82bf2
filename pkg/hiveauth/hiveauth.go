/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

// Package hiveauth keeps the AWS Cognito session the Hive cloud
// expects: tokens are imported once from an authenticated client and
// then renewed with the refresh token for as long as Cognito accepts
// it.
package hiveauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/untillpro/goutils/logger"
)

// Tokens is the persisted content of the session file.
type Tokens struct {
	IDToken      string    `json:"idToken,omitempty"`
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	Expiry       time.Time `json:"expiry"`
}

// Session owns the session file and the refresh flow.
type Session struct {
	path     string
	tokens   Tokens
	client   *http.Client
	clientID string
	endpoint string
	now      func() time.Time
}

func New(path string) *Session {
	return &Session{
		path:     path,
		clientID: DefaultClientID,
		endpoint: fmt.Sprintf(cognitoEndpointFmt, DefaultRegion),
		client:   &http.Client{Timeout: requestTimeout},
		now:      time.Now,
	}
}

// SetPool points the session at a different Cognito pool, e.g. for
// non-UK accounts.
func (s *Session) SetPool(region, clientID string) {
	if region != "" {
		s.endpoint = fmt.Sprintf(cognitoEndpointFmt, region)
	}
	if clientID != "" {
		s.clientID = clientID
	}
}

func (s *Session) Path() string {
	return s.path
}

func (s *Session) Tokens() Tokens {
	return s.tokens
}

// Load reads the session file. An absent file is not an error, the
// session just starts empty.
func (s *Session) Load() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf(errCannotLoadSession, s.path, err)
	}
	if err := json.Unmarshal(content, &s.tokens); err != nil {
		return fmt.Errorf(errCannotLoadSession, s.path, err)
	}
	return nil
}

func (s *Session) Save() error {
	content, err := json.Marshal(s.tokens)
	if err != nil {
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, content, "", "  "); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, pretty.Bytes(), sessionFileMode); err != nil {
		return fmt.Errorf(errCannotSaveSession, s.path, err)
	}
	return nil
}

// Import replaces the session with freshly obtained tokens and
// persists it. A missing expiry is taken from the ID token.
func (s *Session) Import(t Tokens) error {
	s.tokens = t
	if s.tokens.Expiry.IsZero() && s.tokens.IDToken != "" {
		s.tokens.Expiry = s.expiryOf(s.tokens.IDToken)
	}
	return s.Save()
}

// IDToken returns a token for the Authorization header, refreshing
// the session first when it is about to expire. A failed refresh is
// only fatal when it invalidated the session: a stale token is still
// returned and left to the API to reject.
func (s *Session) IDToken(ctx context.Context) (string, error) {
	if s.tokens.IDToken == "" && s.tokens.RefreshToken == "" {
		return "", ErrNoTokens
	}
	if err := s.Refresh(ctx); err != nil {
		if errors.Is(err, ErrReauthRequired) {
			return "", err
		}
		logger.Warning("token refresh failed:", err.Error())
	}
	if s.tokens.IDToken == "" {
		return "", ErrNoTokens
	}
	return s.tokens.IDToken, nil
}

// Refresh renews the ID and access tokens via the Cognito
// REFRESH_TOKEN_AUTH flow. Nothing is done while the current token
// still has more than refreshWindow left. When Cognito rejects the
// refresh token itself the whole session is dropped and the operator
// has to import a fresh one.
func (s *Session) Refresh(ctx context.Context) error {
	if s.tokens.IDToken != "" && !s.tokens.Expiry.IsZero() &&
		s.now().Before(s.tokens.Expiry.Add(-refreshWindow)) {
		logger.Verbose("token still valid, no refresh needed")
		return nil
	}
	if s.tokens.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	logger.Info("refreshing authentication token...")
	result, err := s.initiateAuth(ctx)
	if err != nil {
		var cogErr *cognitoError
		if errors.As(err, &cogErr) && strings.HasSuffix(cogErr.Type, notAuthorizedException) {
			s.tokens = Tokens{}
			if saveErr := s.Save(); saveErr != nil {
				logger.Error(saveErr.Error())
			}
			return fmt.Errorf(errRefreshRejected, cogErr.Message, ErrReauthRequired)
		}
		return fmt.Errorf(errRefreshFailed, err)
	}

	// the refresh token itself does not rotate
	s.tokens.IDToken = result.IDToken
	s.tokens.AccessToken = result.AccessToken
	s.tokens.Expiry = s.expiryOf(result.IDToken)
	if err := s.Save(); err != nil {
		return err
	}
	logger.Info("successfully refreshed authentication token")
	return nil
}

// expiryOf reads the exp claim of the ID token. Cognito signed the
// token, the claim is only used to schedule refreshes, so an
// unverified parse is enough.
func (s *Session) expiryOf(idToken string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return s.now().Add(fallbackTokenTTL)
}
