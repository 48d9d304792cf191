/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package main

import (
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/meetuparchive/slack-standup/internal/adapters/jira"
    "github.com/meetuparchive/slack-standup/internal/adapters/pagerduty"
    "github.com/meetuparchive/slack-standup/internal/adapters/slack"
    "github.com/meetuparchive/slack-standup/internal/config"
    apphttp "github.com/meetuparchive/slack-standup/internal/http"
    "github.com/meetuparchive/slack-standup/internal/jobs"
    "github.com/meetuparchive/slack-standup/internal/logger"
    "github.com/meetuparchive/slack-standup/internal/report"
    "github.com/meetuparchive/slack-standup/internal/services"
)

func main() {
    cfg := config.Load()
    log := logger.New(cfg)

    if err := cfg.Validate(); err != nil {
        log.Fatal().Err(err).Msg("config invalid")
    }

    // Adapters
    jc, err := jira.NewClient(cfg, log)
    if err != nil { log.Fatal().Err(err).Msg("jira client err") }
    pd := pagerduty.NewClient(cfg, log)
    sl := slack.NewClient(cfg, log)

    // Service
    svc := services.New(cfg, log, pd, jc, sl, report.NewRenderer(report.DefaultStatusEmoji))

    // HTTP server (Gin)
    router := apphttp.NewRouter(cfg, log, svc)

    // Cron
    cr := jobs.NewCron(cfg, log, svc)
    cr.Start()
    defer cr.Stop()

    // graceful shutdown
    errCh := make(chan error, 1)
    go func() { errCh <- router.Run(cfg.HTTPAddr) }()

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

    select {
    case <-sigCh:
        log.Info().Msg("shutting down...")
    case err := <-errCh:
        if err != nil { log.Error().Err(err).Msg("http server error") }
    }

    time.Sleep(500 * time.Millisecond)
}
