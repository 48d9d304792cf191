/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package config

import (
    "fmt"
    "log"
    "os"
    "strings"
    "time"
)

type Config struct {
    AppEnv   string
    TZ       string
    HTTPAddr string

    PDToken   string
    PDTeamIDs []string
    PDAPIURL  string

    JiraHost     string
    JiraUsername string
    JiraPassword string
    JiraProject  string

    SlackWebhookURL string

    DigestCron  string
    HTTPTimeout time.Duration
}

func getenv(key, def string) string {
    v := os.Getenv(key)
    if v == "" { return def }
    return v
}

func dur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" { return def }
    d, err := time.ParseDuration(v)
    if err != nil { return def }
    return d
}

func parseStrings(csv string) []string {
    if csv == "" { return nil }
    parts := strings.Split(csv, ",")
    out := make([]string, 0, len(parts))
    for _, p := range parts {
        p = strings.TrimSpace(p)
        if p == "" { continue }
        out = append(out, p)
    }
    return out
}

func Load() Config {
    cfg := Config{
        AppEnv:   getenv("APP_ENV", "dev"),
        TZ:       getenv("APP_TZ", "America/New_York"),
        HTTPAddr: getenv("HTTP_ADDR", ":8080"),

        PDToken:   getenv("PD_TOKEN", ""),
        PDTeamIDs: parseStrings(getenv("PD_TEAM_IDS", "")),
        PDAPIURL:  getenv("PD_API_URL", ""),

        JiraHost:     getenv("JIRA_HOST", ""),
        JiraUsername: getenv("JIRA_USERNAME", ""),
        JiraPassword: getenv("JIRA_PASSWORD", ""),
        JiraProject:  getenv("JIRA_PROJECT", "Core Services"),

        SlackWebhookURL: getenv("SLACK_WEBHOOK_URL", ""),

        DigestCron:  getenv("CRON_SPEC", "0 9 * * MON-FRI"),
        HTTPTimeout: dur("HTTP_TIMEOUT", 15*time.Second),
    }

    // set global timezone if available
    if loc, err := time.LoadLocation(cfg.TZ); err == nil {
        time.Local = loc
    } else {
        log.Printf("warning: cannot load TZ %s: %v", cfg.TZ, err)
    }
    return cfg
}

// Validate reports the credentials the digest cannot run without.
func (c Config) Validate() error {
    var missing []string
    if strings.TrimSpace(c.PDToken) == "" { missing = append(missing, "PD_TOKEN") }
    if len(c.PDTeamIDs) == 0 { missing = append(missing, "PD_TEAM_IDS") }
    if strings.TrimSpace(c.JiraHost) == "" { missing = append(missing, "JIRA_HOST") }
    if strings.TrimSpace(c.JiraUsername) == "" { missing = append(missing, "JIRA_USERNAME") }
    if strings.TrimSpace(c.JiraPassword) == "" { missing = append(missing, "JIRA_PASSWORD") }
    if len(missing) > 0 {
        return fmt.Errorf("config: missing %s", strings.Join(missing, ", "))
    }
    return nil
}
