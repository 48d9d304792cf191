package slack

import (
    "context"
    "encoding/json"
    "io"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/meetuparchive/slack-standup/internal/config"
    "github.com/rs/zerolog"
)

func newClient() *Client {
    return NewClient(config.Config{HTTPTimeout: 5 * time.Second}, zerolog.Nop())
}

func TestPostSendsSingleTextField(t *testing.T) {
    var got map[string]any
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if ct := r.Header.Get("Content-Type"); ct != "application/json" { t.Errorf("content type: %q", ct) }
        b, _ := io.ReadAll(r.Body)
        if err := json.Unmarshal(b, &got); err != nil { t.Errorf("body not json: %v", err) }
        w.Write([]byte("ok"))
    }))
    defer srv.Close()

    if err := newClient().Post(context.Background(), srv.URL, "⛅ *Weather Report*\n"); err != nil {
        t.Fatal(err)
    }
    if len(got) != 1 || got["text"] != "⛅ *Weather Report*\n" {
        t.Fatalf("payload: %#v", got)
    }
}

func TestPostErrors(t *testing.T) {
    if err := newClient().Post(context.Background(), "", "hi"); err == nil {
        t.Fatal("expected error for empty url")
    }
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, "invalid_payload", http.StatusBadRequest)
    }))
    defer srv.Close()
    if err := newClient().Post(context.Background(), srv.URL, "hi"); err == nil {
        t.Fatal("expected error on non-2xx")
    }
}
