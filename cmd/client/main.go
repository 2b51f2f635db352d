// Command client walks through every endpoint of a running server once and
// logs each response. It is a manual smoke test, not part of the service.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"adboard/internal/logger"

	"github.com/rs/zerolog"
	stdlog "github.com/rs/zerolog/log"
)

type client struct {
	host string
	http *http.Client
	log  zerolog.Logger
}

func main() {
	host := flag.String("host", "http://127.0.0.1:8080", "server base URL")
	username := flag.String("username", "skfniecegc", "username for the created user")
	flag.Parse()

	log, err := logger.New("info", logger.FormatConsole)
	if err != nil {
		stdlog.Fatal().Err(err).Msg("failed to build logger")
	}

	c := &client{host: *host, http: &http.Client{Timeout: 10 * time.Second}, log: log}
	ctx := context.Background()

	if err := c.run(ctx, *username); err != nil {
		log.Error().Err(err).Msg("smoke run failed")
		os.Exit(1)
	}
}

func (c *client) run(ctx context.Context, username string) error {
	var created struct {
		ID int64 `json:"id"`
	}

	// POST
	if err := c.call(ctx, http.MethodPost, "/users/", map[string]any{"username": username, "password": "qwecrwer"}, &created); err != nil {
		return err
	}
	userID := created.ID

	if err := c.call(ctx, http.MethodPost, "/advertisements/", map[string]any{
		"header":      "header x",
		"description": "description 2",
		"owner_id":    userID,
	}, &created); err != nil {
		return err
	}
	adID := created.ID

	// GET
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil, nil); err != nil {
		return err
	}
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/advertisements/%d", adID), nil, nil); err != nil {
		return err
	}

	// PATCH
	if err := c.call(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", userID), map[string]any{"username": "newusername"}, nil); err != nil {
		return err
	}
	if err := c.call(ctx, http.MethodPatch, fmt.Sprintf("/advertisements/%d", adID), map[string]any{"header": "new_header"}, nil); err != nil {
		return err
	}

	// DELETE
	if err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/advertisements/%d", adID), nil, nil); err != nil {
		return err
	}
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil, nil)
}

// call sends body as JSON, logs the response and decodes it into out when set.
// Non-2xx responses are logged and returned as errors.
func (c *client) call(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	event := c.log.Info().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode)
	if json.Valid(raw) {
		event = event.RawJSON("body", raw)
	} else {
		event = event.Bytes("body", raw)
	}
	event.Msg("response")

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}
