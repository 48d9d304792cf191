/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package slack

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"

    "github.com/meetuparchive/slack-standup/internal/config"
    "github.com/rs/zerolog"
)

type Client struct {
    http *http.Client
    log  zerolog.Logger
}

func NewClient(cfg config.Config, log zerolog.Logger) *Client {
    return &Client{ http: &http.Client{ Timeout: cfg.HTTPTimeout }, log: log }
}

// Post delivers text to a webhook URL as the single-field Slack payload.
func (c *Client) Post(ctx context.Context, webhookURL string, text string) error {
    if webhookURL == "" { return fmt.Errorf("slack: missing webhook url") }
    body := map[string]any{"text": text}
    b, _ := json.Marshal(body)
    req, err := http.NewRequestWithContext(ctx, "POST", webhookURL, bytes.NewReader(b))
    if err != nil { return err }
    req.Header.Set("Content-Type", "application/json")
    resp, err := c.http.Do(req)
    if err != nil { return err }
    defer resp.Body.Close()
    if resp.StatusCode >= 300 {
        var bodyBytes []byte
        bodyBytes, _ = io.ReadAll(resp.Body)
        return fmt.Errorf("slack post status=%d body=%s", resp.StatusCode, string(bodyBytes))
    }
    return nil
}
