package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/sync/errgroup"
)

const RegisterTimeout = 10 * time.Second

var ErrAppIDNotProvided = errors.New("application id not provided")

type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// RegisterGuild overwrites a guild's commands unless the registry shows the current schema is already there.
func RegisterGuild(ctx context.Context, dg CommandRegistrar, gs GuildStore, appID string, guild *discordgo.Guild) error {
	trace := ctx.Value(TraceKey)
	version := CommandsVersion(Commands)

	row, err := gs.GetGuild(ctx, guild.ID)
	if err == nil && row.CommandsVersion == version {
		slog.Info("guild commands are up to date", "trace", trace, "guild", guild.ID, "version", version)
		return nil
	}
	if err != nil && !errors.Is(err, ErrGuildNotFound) {
		return fmt.Errorf("failed to get guild=%s: %w", guild.ID, err)
	}
	if appID == "" {
		return ErrAppIDNotProvided
	}

	ctx, cancel := context.WithTimeout(ctx, RegisterTimeout)
	defer cancel()

	if _, err := dg.ApplicationCommandBulkOverwrite(appID, guild.ID, Commands, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to overwrite commands for guild=%s: %w", guild.ID, err)
	}

	row = GuildRow{GuildID: guild.ID, Name: guild.Name, CommandsVersion: version, RegisteredAt: time.Now().Unix()}
	if err := gs.SetGuild(ctx, row); err != nil {
		return err
	}

	slog.Info("registered guild commands", "trace", trace, "guild", guild.ID, "version", version)
	return nil
}

// RegisterCommands overwrites the commands globally when no guilds are given, otherwise for each guild concurrently.
func RegisterCommands(ctx context.Context, dg CommandRegistrar, appID string, guildIDs []string) error {
	if appID == "" {
		return ErrAppIDNotProvided
	}
	if len(guildIDs) == 0 {
		if _, err := dg.ApplicationCommandBulkOverwrite(appID, "", Commands, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to overwrite global commands: %w", err)
		}
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, guildID := range guildIDs {
		eg.Go(func() error {
			if _, err := dg.ApplicationCommandBulkOverwrite(appID, guildID, Commands, discordgo.WithContext(ctx)); err != nil {
				return fmt.Errorf("failed to overwrite commands for guild=%s: %w", guildID, err)
			}
			slog.Info("overwrote guild commands", "guild", guildID)
			return nil
		})
	}
	return eg.Wait()
}
