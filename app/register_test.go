package app

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestRegisterCommands_Guilds(t *testing.T) {
	dg := newFakeDiscord()
	ctx := context.WithValue(context.Background(), TraceKey, "test-register-guilds")

	err := RegisterCommands(ctx, dg, "app1", []string{"g1", "g2", "g3"})

	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"g1": 1, "g2": 1, "g3": 1}, dg.overwrites)
}

func TestRegisterCommands_Global(t *testing.T) {
	dg := newFakeDiscord()
	ctx := context.WithValue(context.Background(), TraceKey, "test-register-global")

	err := RegisterCommands(ctx, dg, "app1", nil)

	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"": 1}, dg.overwrites)
}

func TestRegisterCommands_NoAppID(t *testing.T) {
	err := RegisterCommands(context.Background(), newFakeDiscord(), "", []string{"g1"})

	assert.ErrorIs(t, err, ErrAppIDNotProvided)
}

func TestRegisterGuild_Version(t *testing.T) {
	db, cleanup := createTestDB(t)
	defer cleanup()

	dg := newFakeDiscord()
	gs := MakeGuildStore(db)
	ctx := context.WithValue(context.Background(), TraceKey, "test-register-guild")

	stale := GuildRow{GuildID: "g1", Name: "Old Name", CommandsVersion: "stale"}
	if err := gs.SetGuild(ctx, stale); err != nil {
		t.Fatalf("failed to seed guild: %v", err)
	}

	err := RegisterGuild(ctx, dg, gs, "app1", &discordgo.Guild{ID: "g1", Name: "New Name"})
	assert.NoError(t, err)
	assert.Equal(t, 1, dg.overwrites["g1"])

	row, err := gs.GetGuild(ctx, "g1")
	if err != nil {
		t.Fatalf("failed to get guild: %v", err)
	}
	assert.Equal(t, CommandsVersion(Commands), row.CommandsVersion)
	assert.Equal(t, "New Name", row.Name)
	assert.NotZero(t, row.RegisteredAt)
}
