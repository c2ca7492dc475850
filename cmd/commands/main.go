package main

import (
	"context"
	"fatecord/app"
	"fmt"
	"github.com/bwmarrin/discordgo"
	"log"
	"log/slog"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dg, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.Token))
	if err != nil {
		log.Fatalf("failed to construct discord client: %v", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			slog.Error("failed to close discord dg", "err", err)
		}
	}()

	ctx := context.WithValue(context.Background(), app.TraceKey, "register-commands")
	if err := app.RegisterCommands(ctx, dg, cfg.AppID, cfg.GuildIDs); err != nil {
		log.Fatalf("failed to bulk overwrite commands: %v", err)
	}
	slog.Info("registered commands", "guilds", cfg.GuildIDs, "version", app.CommandsVersion(app.Commands))
}
