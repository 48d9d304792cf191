/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package pagerduty

import (
    "context"
    "net/http"
    "time"

    pd "github.com/PagerDuty/go-pagerduty"
    "github.com/meetuparchive/slack-standup/internal/config"
    "github.com/meetuparchive/slack-standup/internal/domain"
    "github.com/rs/zerolog"
)

// incident states worth reporting; resolved ones are old news
var openStatuses = []string{"triggered", "acknowledged"}

type Client struct {
    api     *pd.Client
    teamIDs []string
    log     zerolog.Logger
}

func NewClient(cfg config.Config, log zerolog.Logger) *Client {
    var opts []pd.ClientOptions
    if cfg.PDAPIURL != "" { opts = append(opts, pd.WithAPIEndpoint(cfg.PDAPIURL)) }
    api := pd.NewClient(cfg.PDToken, opts...)
    api.HTTPClient = &http.Client{ Timeout: cfg.HTTPTimeout }
    return &Client{ api: api, teamIDs: cfg.PDTeamIDs, log: log }
}

// OpenIncidents lists triggered and acknowledged incidents for the configured
// teams since the given date. Date granularity only.
func (c *Client) OpenIncidents(ctx context.Context, since time.Time) ([]domain.Incident, error) {
    resp, err := c.api.ListIncidentsWithContext(ctx, pd.ListIncidentsOptions{
        Statuses: openStatuses,
        TeamIDs:  c.teamIDs,
        Since:    since.Format("2006-01-02"),
    })
    if err != nil { return nil, err }
    out := make([]domain.Incident, 0, len(resp.Incidents))
    for _, in := range resp.Incidents {
        out = append(out, domain.Incident{
            Number: int(in.IncidentNumber),
            Title:  in.Title,
            Status: in.Status,
            URL:    in.HTMLURL,
        })
    }
    return out, nil
}
