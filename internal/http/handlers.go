/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package http

import (
    "context"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/meetuparchive/slack-standup/internal/config"
    "github.com/rs/zerolog"
)

type service interface {
    RunDigest(ctx context.Context, webhookURL string) error
}

type Handlers struct {
    cfg config.Config
    log zerolog.Logger
    svc service
}

func NewHandlers(cfg config.Config, log zerolog.Logger, svc service) *Handlers {
    return &Handlers{cfg: cfg, log: log, svc: svc}
}

func (h *Handlers) Healthz(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SlackCommand is the slash-command trigger. Slack posts a form payload; all
// the pipeline needs from it is response_url. The command gets an empty 200
// immediately and the digest is delivered out of band, so internal failures
// are never visible to the caller.
func (h *Handlers) SlackCommand(c *gin.Context) {
    responseURL := strings.TrimSpace(c.PostForm("response_url"))
    if responseURL == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "missing response_url"})
        return
    }
    // Run in background detached from the HTTP request to avoid context cancellation
    go func(){ _ = h.svc.RunDigest(context.Background(), responseURL) }()
    c.Status(http.StatusOK)
}

// RunNow queues a digest to the configured default webhook.
func (h *Handlers) RunNow(c *gin.Context) {
    if h.cfg.SlackWebhookURL == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "SLACK_WEBHOOK_URL not configured"})
        return
    }
    go func(){ _ = h.svc.RunDigest(context.Background(), h.cfg.SlackWebhookURL) }()
    c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
