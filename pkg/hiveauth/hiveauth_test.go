/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

package hiveauth

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 11, 5, 12, 0, 0, 0, time.UTC)

func testSession(t *testing.T, endpoint string, tokens Tokens) *Session {
	s := New(filepath.Join(t.TempDir(), "session.json"))
	if endpoint != "" {
		s.endpoint = endpoint
	}
	s.now = func() time.Time { return testNow }
	s.tokens = tokens
	return s
}

func makeIDToken(t *testing.T, exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestRefreshSkippedWhileTokenValid(t *testing.T) {
	require := require.New(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	s := testSession(t, srv.URL, Tokens{
		IDToken:      "id-1",
		RefreshToken: "refresh-1",
		Expiry:       testNow.Add(10 * time.Minute),
	})
	require.NoError(s.Refresh(context.Background()))
	require.Zero(calls)
	require.Equal("id-1", s.tokens.IDToken)
}

func TestRefreshRenewsTokens(t *testing.T) {
	require := require.New(t)

	newExp := testNow.Add(time.Hour)
	newIDToken := makeIDToken(t, newExp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(http.MethodPost, r.Method)
		require.Equal(amzTargetInitiateAuth, r.Header.Get("X-Amz-Target"))
		require.Equal(amzJSONContentType, r.Header.Get("Content-Type"))

		var req initiateAuthRequest
		require.NoError(json.NewDecoder(r.Body).Decode(&req))
		require.Equal(authFlowRefreshToken, req.AuthFlow)
		require.Equal(DefaultClientID, req.ClientId)
		require.Equal("refresh-1", req.AuthParameters[authParamRefreshToken])

		require.NoError(json.NewEncoder(w).Encode(initiateAuthResponse{
			AuthenticationResult: authenticationResult{
				IDToken:     newIDToken,
				AccessToken: "access-2",
				ExpiresIn:   3600,
				TokenType:   "Bearer",
			},
		}))
	}))
	defer srv.Close()

	s := testSession(t, srv.URL, Tokens{
		IDToken:      "id-1",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		Expiry:       testNow.Add(time.Minute),
	})
	require.NoError(s.Refresh(context.Background()))

	require.Equal(newIDToken, s.tokens.IDToken)
	require.Equal("access-2", s.tokens.AccessToken)
	require.Equal("refresh-1", s.tokens.RefreshToken)
	require.True(s.tokens.Expiry.Equal(time.Unix(newExp.Unix(), 0)))

	// the renewed session was persisted
	reloaded := New(s.path)
	require.NoError(reloaded.Load())
	require.Equal(newIDToken, reloaded.tokens.IDToken)
}

func TestRefreshRejectedClearsSession(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"__type":"NotAuthorizedException","message":"Refresh Token has expired"}`))
	}))
	defer srv.Close()

	s := testSession(t, srv.URL, Tokens{
		IDToken:      "id-1",
		RefreshToken: "refresh-1",
		Expiry:       testNow.Add(-time.Hour),
	})
	require.ErrorIs(s.Refresh(context.Background()), ErrReauthRequired)
	require.Equal(Tokens{}, s.tokens)

	// the cleared session was persisted too
	reloaded := New(s.path)
	require.NoError(reloaded.Load())
	require.Empty(reloaded.tokens.IDToken)

	_, err := s.IDToken(context.Background())
	require.ErrorIs(err, ErrNoTokens)
}

func TestRefreshOtherCognitoErrorKeepsTokens(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"__type":"TooManyRequestsException","message":"slow down"}`))
	}))
	defer srv.Close()

	s := testSession(t, srv.URL, Tokens{
		IDToken:      "id-1",
		RefreshToken: "refresh-1",
		Expiry:       testNow.Add(-time.Hour),
	})
	err := s.Refresh(context.Background())
	require.Error(err)
	require.NotErrorIs(err, ErrReauthRequired)
	require.Equal("id-1", s.tokens.IDToken)
	require.Equal("refresh-1", s.tokens.RefreshToken)
}

func TestRefreshWithoutRefreshToken(t *testing.T) {
	s := testSession(t, "", Tokens{IDToken: "id-1", Expiry: testNow.Add(-time.Hour)})
	require.ErrorIs(t, s.Refresh(context.Background()), ErrNoRefreshToken)
}

func TestIDToken(t *testing.T) {
	require := require.New(t)

	s := testSession(t, "", Tokens{})
	_, err := s.IDToken(context.Background())
	require.ErrorIs(err, ErrNoTokens)

	s = testSession(t, "", Tokens{
		IDToken:      "id-1",
		RefreshToken: "refresh-1",
		Expiry:       testNow.Add(time.Hour),
	})
	token, err := s.IDToken(context.Background())
	require.NoError(err)
	require.Equal("id-1", token)
}

func TestIDTokenStaleAfterFailedRefresh(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// the refresh fails but the session is still there, the stale
	// token is returned and left to the API to reject
	s := testSession(t, srv.URL, Tokens{
		IDToken:      "id-1",
		RefreshToken: "refresh-1",
		Expiry:       testNow.Add(-time.Hour),
	})
	token, err := s.IDToken(context.Background())
	require.NoError(err)
	require.Equal("id-1", token)
}

func TestIDTokenMintedFromRefreshTokenOnly(t *testing.T) {
	require := require.New(t)

	newIDToken := makeIDToken(t, testNow.Add(time.Hour))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(json.NewEncoder(w).Encode(initiateAuthResponse{
			AuthenticationResult: authenticationResult{
				IDToken:     newIDToken,
				AccessToken: "access-1",
				ExpiresIn:   3600,
				TokenType:   "Bearer",
			},
		}))
	}))
	defer srv.Close()

	// an imported session may carry nothing but the refresh token
	s := testSession(t, srv.URL, Tokens{RefreshToken: "refresh-1"})
	token, err := s.IDToken(context.Background())
	require.NoError(err)
	require.Equal(newIDToken, token)
}

func TestImportDerivesExpiry(t *testing.T) {
	require := require.New(t)

	exp := testNow.Add(45 * time.Minute)
	s := testSession(t, "", Tokens{})
	require.NoError(s.Import(Tokens{
		IDToken:      makeIDToken(t, exp),
		RefreshToken: "refresh-1",
	}))
	require.True(s.tokens.Expiry.Equal(time.Unix(exp.Unix(), 0)))

	// tokens that do not parse as JWT fall back to the assumed TTL
	require.NoError(s.Import(Tokens{IDToken: "opaque", RefreshToken: "refresh-1"}))
	require.True(s.tokens.Expiry.Equal(testNow.Add(fallbackTokenTTL)))
}

func TestSessionFilePermissions(t *testing.T) {
	require := require.New(t)

	s := testSession(t, "", Tokens{IDToken: "id-1"})
	require.NoError(s.Save())

	info, err := os.Stat(s.path)
	require.NoError(err)
	require.Equal(fs.FileMode(sessionFileMode), info.Mode().Perm())
}
