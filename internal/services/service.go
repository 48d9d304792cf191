/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package services

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/google/uuid"
    "github.com/meetuparchive/slack-standup/internal/config"
    "github.com/meetuparchive/slack-standup/internal/domain"
    "github.com/meetuparchive/slack-standup/internal/report"
    "github.com/rs/zerolog"
)

type IncidentSource interface {
    OpenIncidents(ctx context.Context, since time.Time) ([]domain.Incident, error)
}

type IssueSource interface {
    Search(ctx context.Context, jql string) ([]domain.Issue, error)
}

type Notifier interface {
    Post(ctx context.Context, webhookURL string, text string) error
}

type Service struct {
    cfg    config.Config
    log    zerolog.Logger
    pd     IncidentSource
    jira   IssueSource
    slack  Notifier
    render *report.Renderer
    now    func() time.Time
}

func New(cfg config.Config, log zerolog.Logger, pd IncidentSource, jira IssueSource, slack Notifier, r *report.Renderer) *Service {
    return &Service{cfg: cfg, log: log, pd: pd, jira: jira, slack: slack, render: r, now: time.Now}
}

// lookbackDays is 1 on any weekday, 3 on Monday so the report covers the
// weekend gap.
func lookbackDays(now time.Time) int {
    if now.Weekday() == time.Monday { return 3 }
    return 1
}

func closedJQL(project string, days int) string {
    return fmt.Sprintf(`project = %q AND status in (Closed) and resolutiondate >= -%dd`, project, days)
}

func inFlightJQL(project string) string {
    return fmt.Sprintf(`project = %q AND status in ("In Progress", "In Review") order by status, assignee`, project)
}

// incidentFetch and issueFetch carry the degraded-to-empty result together
// with its cause, so a failed fetch stays observable instead of silently
// vanishing.
type incidentFetch struct {
    incidents []domain.Incident
    err       error
}

type issueFetch struct {
    issues []domain.Issue
    err    error
}

func (s *Service) fetchIncidents(ctx context.Context, since time.Time) incidentFetch {
    incidents, err := s.pd.OpenIncidents(ctx, since)
    if err != nil { return incidentFetch{err: err} }
    return incidentFetch{incidents: incidents}
}

func (s *Service) fetchIssues(ctx context.Context, jql string) issueFetch {
    issues, err := s.jira.Search(ctx, jql)
    if err != nil { return issueFetch{err: err} }
    return issueFetch{issues: issues}
}

// RunDigest runs the whole pipeline once: lookback window, three independent
// read-only fetches (each degrading to empty on failure), aggregation, and a
// single best-effort delivery to webhookURL.
func (s *Service) RunDigest(ctx context.Context, webhookURL string) error {
    if webhookURL == "" { return errors.New("digest: missing destination url") }
    log := s.log.With().Str("run", uuid.NewString()).Logger()
    log.Info().Msg("digest: start")

    now := s.now()
    days := lookbackDays(now)
    since := now.AddDate(0, 0, -days)

    // how was the weather?
    wr := s.fetchIncidents(ctx, since)
    if wr.err != nil { log.Error().Err(wr.err).Msg("digest: incident fetch failed, reporting none") }

    // what shipped, what's in flight? Both snapshots are collected before any
    // grouping happens.
    closed := s.fetchIssues(ctx, closedJQL(s.cfg.JiraProject, days))
    if closed.err != nil { log.Error().Err(closed.err).Msg("digest: closed-issues fetch failed, reporting none") }
    inFlight := s.fetchIssues(ctx, inFlightJQL(s.cfg.JiraProject))
    if inFlight.err != nil { log.Error().Err(inFlight.err).Msg("digest: in-flight fetch failed, reporting none") }

    // closed results come first so their lines lead each status group
    issues := append(append([]domain.Issue{}, closed.issues...), inFlight.issues...)
    text := s.render.Combined(wr.incidents, issues)

    if err := s.slack.Post(ctx, webhookURL, text); err != nil {
        log.Error().Err(err).Msg("digest: delivery failed")
        return nil
    }
    log.Info().Int("incidents", len(wr.incidents)).Int("issues", len(issues)).Msg("digest: delivered")
    return nil
}
