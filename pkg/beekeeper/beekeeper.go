/*
* Copyright (c) 2024-present unTill Pro, Ltd.
* @author Alisher Nurmanov
 */

// Package beekeeper talks to the Hive cloud API that the my.hivehome.com
// web client uses.
package beekeeper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/untillpro/goutils/logger"

	"github.com/hivesched/hivesched/pkg/schedule"
)

// TokenSource supplies the Authorization token and renews it on
// demand.
type TokenSource interface {
	IDToken(ctx context.Context) (string, error)
	Refresh(ctx context.Context) error
}

type Client struct {
	baseURL string
	auth    TokenSource
	client  *http.Client
}

func New(auth TokenSource) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		auth:    auth,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// SetBaseURL points the client at a different beekeeper instance.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetDaySchedule posts the switching points of a single day to the
// node and returns the schedule the cloud confirmed, nil when the
// response could not be decoded. On 401 the session is refreshed and
// the update retried exactly once.
func (c *Client) SetDaySchedule(ctx context.Context, nodeID string, day schedule.Day, entries schedule.DaySchedule) (schedule.Schedule, error) {
	payload, err := schedule.DayPayload(day, entries)
	if err != nil {
		return nil, err
	}

	token, err := c.auth.IDToken(ctx)
	if err != nil {
		return nil, errors.Join(ErrAuthFailed, err)
	}

	url := c.baseURL + "/nodes/heating/" + nodeID
	status, body, err := c.post(ctx, url, token, payload)
	if err != nil {
		return nil, fmt.Errorf(errRequestFailed, err)
	}

	if status == http.StatusUnauthorized {
		logger.Warning("authentication failed (401), refreshing token and retrying...")
		if err := c.auth.Refresh(ctx); err != nil {
			return nil, errors.Join(ErrAuthFailed, err)
		}
		if token, err = c.auth.IDToken(ctx); err != nil {
			return nil, errors.Join(ErrAuthFailed, err)
		}
		status, body, err = c.post(ctx, url, token, payload)
		if err != nil {
			return nil, errors.Join(ErrAuthFailed, err)
		}
		if !successful(status) {
			return nil, errors.Join(ErrAuthFailed, fmt.Errorf(errUnexpectedStatus, status, truncate(body)))
		}
	} else if status == http.StatusNotFound {
		return nil, fmt.Errorf(errNodeNotFound, nodeID, ErrNodeNotFound)
	} else if !successful(status) {
		return nil, fmt.Errorf(errUnexpectedStatus, status, truncate(body))
	}

	logger.Info("successfully updated Hive schedule for node", nodeID)

	confirmed, err := schedule.Decode(body)
	if err != nil {
		logger.Verbose("could not parse response for readable format:", err.Error())
		return nil, nil
	}
	return confirmed, nil
}

func (c *Client) post(ctx context.Context, url string, token string, payload []byte) (status int, body []byte, err error) {
	logAPICall(http.MethodPost, url, token, payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Origin", headerOrigin)
	req.Header.Set("Referer", headerReferer)
	// beekeeper expects the raw ID token, no Bearer prefix
	req.Header.Set("Authorization", token)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func successful(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func logAPICall(method, url, token string, payload []byte) {
	if !logger.IsVerbose() {
		return
	}
	logger.Verbose(method, url)
	logger.Verbose("Authorization:", sanitizeToken(token))
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err == nil {
		logger.Verbose("payload:\n" + pretty.String())
	}
}

func sanitizeToken(token string) string {
	if len(token) <= 2*tokenPeekLen {
		return token
	}
	return token[:tokenPeekLen] + "..." + token[len(token)-tokenPeekLen:]
}

func truncate(body []byte) string {
	if len(body) > maxLoggedBodyLen {
		return string(body[:maxLoggedBodyLen]) + "..."
	}
	return string(body)
}
