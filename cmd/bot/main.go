package main

import (
	"fatecord/app"
	"fmt"
	"github.com/bwmarrin/discordgo"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := app.OpenDB(cfg.DbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	dg, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.Token))
	if err != nil {
		log.Fatalf("failed to construct discord client: %v", err)
	}
	defer func() {
		_ = dg.Close()
	}()

	dg.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentGuildIntegrations |
		discordgo.IntentGuildMessageReactions |
		discordgo.IntentMessageContent

	state := app.MakeState(dg, cfg, app.MakeGuildStore(db))
	go state.Drafts.Start()
	defer state.Drafts.Stop()
	defer state.Presence.Stop()

	dg.AddHandler(state.HandleReady)
	dg.AddHandler(state.HandleGuildCreate)
	dg.AddHandler(state.HandleGuildDelete)
	dg.AddHandler(state.HandleMessageCreate)
	dg.AddHandler(state.HandleInteractionCreate)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	slog.Info("starting fatecord service")
	if err = dg.Open(); err != nil {
		log.Fatalf("failed to connect to events: %v", err)
	}

	slog.Info("fatecord service is listening for events")
	<-signalChan
}
