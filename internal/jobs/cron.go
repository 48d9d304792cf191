package jobs

import (
    "context"
    "time"

    "github.com/meetuparchive/slack-standup/internal/config"
    "github.com/robfig/cron/v3"
    "github.com/rs/zerolog"
)

type service interface { RunDigest(ctx context.Context, webhookURL string) error }

type Cron struct {
    cfg config.Config
    log zerolog.Logger
    svc service
    c   *cron.Cron
}

func NewCron(cfg config.Config, log zerolog.Logger, svc service) *Cron {
    loc, _ := time.LoadLocation(cfg.TZ)
    c := cron.New(cron.WithLocation(loc), cron.WithParser(cron.NewParser(cron.Minute|cron.Hour|cron.Dom|cron.Month|cron.Dow)))
    cr := &Cron{cfg: cfg, log: log, svc: svc, c: c}
    _, _ = c.AddFunc(cfg.DigestCron, cr.daily)
    return cr
}

func (cr *Cron) Start(){ cr.c.Start() }
func (cr *Cron) Stop(){ cr.c.Stop() }

func (cr *Cron) daily(){
    if cr.cfg.SlackWebhookURL == "" {
        cr.log.Info().Msg("cron: no SLACK_WEBHOOK_URL, skipping scheduled digest")
        return
    }
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute); defer cancel()
    cr.log.Info().Msg("cron: daily digest")
    if err := cr.svc.RunDigest(ctx, cr.cfg.SlackWebhookURL); err != nil { cr.log.Error().Err(err).Msg("cron: digest failed") }
}
