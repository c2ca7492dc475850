package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"go.uber.org/atomic"
)

type StatusUpdater interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

type GuildCounter interface {
	CountGuilds(ctx context.Context) (int, error)
}

// Presence cycles the bot's activity line through the commands it offers.
type Presence struct {
	Dg      StatusUpdater
	Guilds  GuildCounter
	Cron    *cron.Cron
	index   atomic.Uint32
	started atomic.Bool
}

func MakePresence(dg StatusUpdater, guilds GuildCounter) *Presence {
	return &Presence{Dg: dg, Guilds: guilds, Cron: cron.New()}
}

// Start schedules the rotation, calling it again is a no-op so reconnects don't stack schedules.
func (p *Presence) Start(schedule string) error {
	if !p.started.CompareAndSwap(false, true) {
		return nil
	}
	if _, err := p.Cron.AddFunc(schedule, p.Rotate); err != nil {
		p.started.Store(false)
		return fmt.Errorf("failed to schedule presence with schedule=%s: %w", schedule, err)
	}
	p.Cron.Start()
	go p.Rotate()

	slog.Info("started presence rotation", "schedule", schedule)
	return nil
}

func (p *Presence) Stop() {
	if p.started.Load() {
		<-p.Cron.Stop().Done()
	}
}

func (p *Presence) statusLines(ctx context.Context) []string {
	lines := []string{"/rollfate", "/ballot new"}
	if p.Guilds == nil {
		return lines
	}
	count, err := p.Guilds.CountGuilds(ctx)
	if err != nil {
		slog.Error("failed to count guilds for presence", "trace", ctx.Value(TraceKey), "err", err)
		return lines
	}
	if count > 0 {
		lines = append(lines, fmt.Sprintf("in %d servers", count))
	}
	return lines
}

func (p *Presence) Rotate() {
	ctx := context.WithValue(context.Background(), TraceKey, "presence-rotate")

	lines := p.statusLines(ctx)
	line := lines[int(p.index.Inc()-1)%len(lines)]

	usd := discordgo.UpdateStatusData{
		Status:     string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{{Name: line, Type: discordgo.ActivityTypeGame}},
	}
	if err := p.Dg.UpdateStatusComplex(usd); err != nil {
		slog.Error("failed to update presence", "trace", ctx.Value(TraceKey), "status", line, "err", err)
		return
	}
	slog.Info("updated presence", "trace", ctx.Value(TraceKey), "status", line)
}
