package http

import (
    "context"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "sync"
    "testing"
    "time"

    "github.com/meetuparchive/slack-standup/internal/config"
    "github.com/rs/zerolog"
)

type fakeService struct {
    mu   sync.Mutex
    urls []string
    done chan struct{}
}

func (f *fakeService) RunDigest(ctx context.Context, webhookURL string) error {
    f.mu.Lock()
    f.urls = append(f.urls, webhookURL)
    f.mu.Unlock()
    f.done <- struct{}{}
    return nil
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
    req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
    req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
    w := httptest.NewRecorder()
    r.ServeHTTP(w, req)
    return w
}

func TestSlackCommandTriggersRun(t *testing.T) {
    svc := &fakeService{done: make(chan struct{}, 1)}
    router := NewRouter(config.Config{AppEnv: "dev"}, zerolog.Nop(), svc)

    w := postForm(router, "/slack/command", url.Values{"response_url": {"http://hook"}})
    if w.Code != http.StatusOK { t.Fatalf("status: %d", w.Code) }
    if w.Body.Len() != 0 { t.Fatalf("trigger response must be empty, got %q", w.Body.String()) }

    select {
    case <-svc.done:
    case <-time.After(2 * time.Second):
        t.Fatal("digest run never started")
    }
    svc.mu.Lock()
    defer svc.mu.Unlock()
    if len(svc.urls) != 1 || svc.urls[0] != "http://hook" {
        t.Fatalf("run urls: %#v", svc.urls)
    }
}

func TestSlackCommandRejectsMissingResponseURL(t *testing.T) {
    svc := &fakeService{done: make(chan struct{}, 1)}
    router := NewRouter(config.Config{AppEnv: "dev"}, zerolog.Nop(), svc)
    w := postForm(router, "/slack/command", url.Values{"text": {"standup"}})
    if w.Code != http.StatusBadRequest { t.Fatalf("status: %d", w.Code) }
    select {
    case <-svc.done:
        t.Fatal("no run should start for a malformed trigger")
    case <-time.After(50 * time.Millisecond):
    }
}

func TestRunNowUsesConfiguredWebhook(t *testing.T) {
    svc := &fakeService{done: make(chan struct{}, 1)}
    cfg := config.Config{AppEnv: "dev", SlackWebhookURL: "http://default-hook"}
    router := NewRouter(cfg, zerolog.Nop(), svc)

    w := postForm(router, "/admin/run", url.Values{})
    if w.Code != http.StatusAccepted { t.Fatalf("status: %d", w.Code) }
    select {
    case <-svc.done:
    case <-time.After(2 * time.Second):
        t.Fatal("digest run never started")
    }
    svc.mu.Lock()
    defer svc.mu.Unlock()
    if len(svc.urls) != 1 || svc.urls[0] != "http://default-hook" {
        t.Fatalf("run urls: %#v", svc.urls)
    }
}

func TestRunNowWithoutWebhookConfigured(t *testing.T) {
    svc := &fakeService{done: make(chan struct{}, 1)}
    router := NewRouter(config.Config{AppEnv: "dev"}, zerolog.Nop(), svc)
    w := postForm(router, "/admin/run", url.Values{})
    if w.Code != http.StatusBadRequest { t.Fatalf("status: %d", w.Code) }
}
