/* Copyright (c) 2025 Hamed Shams <https://hamedshams.com>
 * SPDX-License-Identifier: BSD-3-Clause */
package report

import (
    "fmt"
    "sort"
    "strings"

    "github.com/meetuparchive/slack-standup/internal/domain"
)

// DefaultStatusEmoji decorates known statuses in the issue block.
var DefaultStatusEmoji = map[string]string{
    "In Progress": "👩🏻‍💻",
    "In Review":   "👩🏼‍🔬",
    "Closed":      "🎉",
}

const (
    weatherHeader = "⛅ *Weather Report*\n"
    fallbackGlyph = ":shrug:"
    unknownStatus = "Unknown Status"
)

type Renderer struct {
    statusEmoji map[string]string
}

// NewRenderer copies the glyph table so later mutation of the argument cannot
// change rendering.
func NewRenderer(statusEmoji map[string]string) *Renderer {
    m := make(map[string]string, len(statusEmoji))
    for k, v := range statusEmoji { m[k] = v }
    return &Renderer{statusEmoji: m}
}

// IncidentBlock renders the weather section: a fixed header plus one line per
// incident in fetch order.
func (r *Renderer) IncidentBlock(incidents []domain.Incident) string {
    var b strings.Builder
    b.WriteString(weatherHeader)
    for _, in := range incidents {
        fmt.Fprintf(&b, "<%s|#%d> %s (%s)\n", in.URL, in.Number, in.Title, in.Status)
    }
    return b.String()
}

func displayStatus(is domain.Issue) string {
    if is.Status == "" { return unknownStatus }
    return is.Status
}

// owner is suppressed for Closed: everyone owns shipped work. Everything else
// gets @assignee or @nobody. Status-conditional on purpose; do not generalize.
func owner(is domain.Issue, status string) string {
    if status == "Closed" { return "" }
    name := is.Assignee
    if name == "" { name = "nobody" }
    return "@" + name
}

func issueLine(is domain.Issue, status string) string {
    summary := is.Summary
    if summary == "" { summary = "no summary" }
    return fmt.Sprintf("<%s|%s> %s%s", is.Permalink, is.Key, summary, owner(is, status))
}

func (r *Renderer) label(status string) string {
    glyph, ok := r.statusEmoji[status]
    if !ok { glyph = fallbackGlyph }
    return fmt.Sprintf("%s *%s*", glyph, status)
}

// IssueBlock groups rendered issue lines under decorated status labels and
// emits the groups in lexicographic label order. Within a group, lines keep
// the order of the input slice.
func (r *Renderer) IssueBlock(issues []domain.Issue) string {
    groups := map[string][]string{}
    for _, is := range issues {
        status := displayStatus(is)
        key := r.label(status)
        groups[key] = append(groups[key], issueLine(is, status))
    }
    keys := make([]string, 0, len(groups))
    for k := range groups { keys = append(keys, k) }
    sort.Strings(keys)
    var b strings.Builder
    for _, k := range keys {
        b.WriteString(k)
        b.WriteByte('\n')
        b.WriteString(strings.Join(groups[k], "\n"))
        b.WriteByte('\n')
    }
    return b.String()
}

// Combined joins the weather and issue blocks for delivery.
func (r *Renderer) Combined(incidents []domain.Incident, issues []domain.Issue) string {
    return strings.Join([]string{r.IncidentBlock(incidents), r.IssueBlock(issues)}, "\n")
}
