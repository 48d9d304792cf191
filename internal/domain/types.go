package domain

// Incident is an open PagerDuty incident, taken verbatim from the API.
type Incident struct {
    Number int
    Title  string
    Status string
    URL    string
}

// Issue is a Jira work item. Summary, Status and Assignee may be empty when
// the tracker omits the field.
type Issue struct {
    Key       string
    Summary   string
    Permalink string
    Status    string
    Assignee  string
}
