/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package jira

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"

    "github.com/meetuparchive/slack-standup/internal/config"
    "github.com/meetuparchive/slack-standup/internal/domain"
    "github.com/rs/zerolog"
)

const searchFields = "summary,status,assignee"

type Client struct {
    baseURL string
    user    string
    pass    string
    http    *http.Client
    log     zerolog.Logger
}

func NewClient(cfg config.Config, log zerolog.Logger) (*Client, error) {
    base := strings.TrimRight(strings.TrimSpace(cfg.JiraHost), "/")
    if base == "" { return nil, errors.New("jira: empty host") }
    u, err := url.Parse(base)
    if err != nil || u.Scheme == "" || u.Host == "" {
        return nil, fmt.Errorf("jira: invalid host %q", cfg.JiraHost)
    }
    return &Client{
        baseURL: base,
        user:    cfg.JiraUsername,
        pass:    cfg.JiraPassword,
        http:    &http.Client{ Timeout: cfg.HTTPTimeout },
        log:     log,
    }, nil
}

func (c *Client) apiURL(path string, q url.Values) string {
    if !strings.HasPrefix(path, "/") { path = "/" + path }
    u := c.baseURL + path
    if len(q) > 0 { u = u + "?" + q.Encode() }
    return u
}

// Permalink is the browse URL for an issue key.
func (c *Client) Permalink(key string) string {
    return c.baseURL + "/browse/" + key
}

type searchPage struct {
    StartAt    int          `json:"startAt"`
    MaxResults int          `json:"maxResults"`
    Total      int          `json:"total"`
    Issues     []issueRecord `json:"issues"`
}

type issueRecord struct {
    Key    string `json:"key"`
    Fields struct {
        Summary string `json:"summary"`
        Status  *struct {
            Name string `json:"name"`
        } `json:"status"`
        Assignee *struct {
            Name        string `json:"name"`
            DisplayName string `json:"displayName"`
        } `json:"assignee"`
    } `json:"fields"`
}

func (c *Client) searchPage(ctx context.Context, jql string, startAt int) (*searchPage, error) {
    q := url.Values{}
    q.Set("jql", jql)
    q.Set("fields", searchFields)
    if startAt > 0 { q.Set("startAt", fmt.Sprint(startAt)) }
    u := c.apiURL("/rest/api/2/search", q)
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
    if err != nil { return nil, err }
    req.SetBasicAuth(c.user, c.pass)
    resp, err := c.http.Do(req)
    if err != nil { return nil, err }
    defer resp.Body.Close()
    if resp.StatusCode >= 300 {
        b, _ := io.ReadAll(resp.Body)
        return nil, fmt.Errorf("jira api status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(b)))
    }
    var page searchPage
    if err := json.NewDecoder(resp.Body).Decode(&page); err != nil { return nil, err }
    return &page, nil
}

// Search runs a JQL query and collects every page into one snapshot, in the
// order the tracker returned the issues.
func (c *Client) Search(ctx context.Context, jql string) ([]domain.Issue, error) {
    if jql == "" { return nil, errors.New("jira: empty jql") }
    var out []domain.Issue
    startAt := 0
    for {
        page, err := c.searchPage(ctx, jql, startAt)
        if err != nil { return nil, err }
        for _, rec := range page.Issues {
            out = append(out, c.toIssue(rec))
        }
        startAt += len(page.Issues)
        if len(page.Issues) == 0 || startAt >= page.Total { break }
    }
    return out, nil
}

func (c *Client) toIssue(rec issueRecord) domain.Issue {
    is := domain.Issue{
        Key:       rec.Key,
        Summary:   rec.Fields.Summary,
        Permalink: c.Permalink(rec.Key),
    }
    if rec.Fields.Status != nil { is.Status = rec.Fields.Status.Name }
    if rec.Fields.Assignee != nil {
        // Jira Cloud omits name; fall back to displayName
        is.Assignee = rec.Fields.Assignee.Name
        if is.Assignee == "" { is.Assignee = rec.Fields.Assignee.DisplayName }
    }
    return is
}
