package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/cespare/xxhash/v2"
	"github.com/coocood/freecache"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	freecachestore "github.com/eko/gocache/store/freecache/v4"
	"github.com/jmoiron/sqlx"
)

const GuildCacheSize = 1024 * 1024
const GuildCacheTTL = 30 * time.Minute

var ErrGuildNotFound = errors.New("guild not found")

type GuildRow struct {
	GuildID         string `db:"guild_id" json:"guild_id"`
	Name            string `db:"name" json:"name"`
	CommandsVersion string `db:"commands_version" json:"commands_version"`
	RegisteredAt    int64  `db:"registered_at" json:"registered_at"`
}

// GuildStore records the guilds whose commands are registered so reconnects don't re-register them.
type GuildStore struct {
	Db    *sqlx.DB
	Cache *cache.Cache[[]byte]
}

func MakeGuildStore(db *sqlx.DB) GuildStore {
	freeCache := freecachestore.NewFreecache(freecache.NewCache(GuildCacheSize), store.WithExpiration(GuildCacheTTL))
	return GuildStore{
		Db:    db,
		Cache: cache.New[[]byte](freeCache),
	}
}

func (gs GuildStore) GetGuild(ctx context.Context, guildID string) (GuildRow, error) {
	trace := ctx.Value(TraceKey)

	b, err := gs.Cache.Get(ctx, guildID)
	if err == nil && b != nil {
		var row GuildRow
		if err := json.Unmarshal(b, &row); err == nil {
			return row, nil
		}
		slog.Warn("failed to decode cached guild", "trace", trace, "guild", guildID, "err", err)
	} else if err != nil && !isCacheMiss(err) {
		slog.Error("failed to get guild from cache", "trace", trace, "guild", guildID, "err", err)
	}

	var row GuildRow
	err = gs.Db.GetContext(ctx, &row, "SELECT guild_id, name, commands_version, registered_at FROM guilds WHERE guild_id = ?", guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return GuildRow{}, ErrGuildNotFound
	}
	if err != nil {
		return GuildRow{}, fmt.Errorf("failed to select guild=%s: %w", guildID, err)
	}

	gs.cacheGuild(ctx, row)
	slog.Info("selected guild", "trace", trace, "guild", row)
	return row, nil
}

func (gs GuildStore) SetGuild(ctx context.Context, row GuildRow) error {
	_, err := gs.Db.NamedExecContext(ctx, `
		INSERT INTO guilds (guild_id, name, commands_version, registered_at)
		VALUES (:guild_id, :name, :commands_version, :registered_at)
		ON CONFLICT (guild_id) DO UPDATE SET
			name = excluded.name,
			commands_version = excluded.commands_version,
			registered_at = excluded.registered_at`, row)
	if err != nil {
		return fmt.Errorf("failed to upsert guild=%s: %w", row.GuildID, err)
	}

	gs.cacheGuild(ctx, row)
	slog.Info("upserted guild", "trace", ctx.Value(TraceKey), "guild", row)
	return nil
}

func (gs GuildStore) DeleteGuild(ctx context.Context, guildID string) error {
	if _, err := gs.Db.ExecContext(ctx, "DELETE FROM guilds WHERE guild_id = ?", guildID); err != nil {
		return fmt.Errorf("failed to delete guild=%s: %w", guildID, err)
	}
	if err := gs.Cache.Delete(ctx, guildID); err != nil {
		slog.Warn("failed to delete guild from cache", "trace", ctx.Value(TraceKey), "guild", guildID, "err", err)
	}
	return nil
}

func (gs GuildStore) CountGuilds(ctx context.Context) (int, error) {
	var count int
	if err := gs.Db.GetContext(ctx, &count, "SELECT COUNT(*) FROM guilds"); err != nil {
		return 0, fmt.Errorf("failed to count guilds: %w", err)
	}
	return count, nil
}

func isCacheMiss(err error) bool {
	return errors.Is(err, store.NotFound{}) || errors.Is(err, freecache.ErrNotFound)
}

func (gs GuildStore) cacheGuild(ctx context.Context, row GuildRow) {
	b, err := json.Marshal(row)
	if err != nil {
		slog.Error("failed to encode guild", "trace", ctx.Value(TraceKey), "guild", row, "err", err)
		return
	}
	if err := gs.Cache.Set(ctx, row.GuildID, b); err != nil {
		slog.Error("failed to set guild in cache", "trace", ctx.Value(TraceKey), "guild", row.GuildID, "err", err)
	}
}

// CommandsVersion fingerprints a command schema, a guild registered under another version must be registered again.
func CommandsVersion(commands []*discordgo.ApplicationCommand) string {
	b, err := json.Marshal(commands)
	if err != nil {
		slog.Error("failed to encode commands", "err", err)
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}
