package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"go.uber.org/atomic"
	"golang.org/x/exp/slices"
)

type VotingType string

const (
	Preference       VotingType = "pf"
	RankedChoice     VotingType = "rc"
	Score            VotingType = "sr"
	FirstPastThePost VotingType = "fp"
)

var VotingTypes = []VotingType{Preference, RankedChoice, Score, FirstPastThePost}

func (vt VotingType) IsValid() bool {
	return slices.Contains(VotingTypes, vt)
}

func (vt VotingType) Name() string {
	switch vt {
	case Preference:
		return "Preference Voting"
	case RankedChoice:
		return "Ranked Choice Voting"
	case Score:
		return "Score Voting"
	case FirstPastThePost:
		return "First Past The Post"
	}
	return string(vt)
}

func (vt VotingType) Emoji() string {
	switch vt {
	case Preference:
		return "⚙"
	case RankedChoice:
		return "🥇"
	case Score:
		return "🅱"
	case FirstPastThePost:
		return "✉"
	}
	return "❓"
}

var ErrDraftExpired = errors.New("ballot draft expired")
var ErrDraftSubmitted = errors.New("ballot draft already submitted")

type BallotDraft struct {
	ID          string
	Question    string
	Type        VotingType
	OptionCount int
	Author      string
	Submitted   atomic.Bool
}

type DraftCache = *ttlcache.Cache[string, *BallotDraft]

const DefaultDraftTTL = 15 * time.Minute

func MakeDraftCache(ttl time.Duration) DraftCache {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	cache := ttlcache.New[string, *BallotDraft](
		ttlcache.WithTTL[string, *BallotDraft](ttl),
		ttlcache.WithDisableTouchOnHit[string, *BallotDraft](),
	)
	cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *BallotDraft]) {
		slog.Info("evicted ballot draft", "id", item.Key(), "reason", reason)
	})
	return cache
}

func CreateDraft(ctx context.Context, cache DraftCache, question string, vt VotingType, optionCount int, author string) *BallotDraft {
	draft := &BallotDraft{
		ID:          uuid.NewString(),
		Question:    question,
		Type:        vt,
		OptionCount: optionCount,
		Author:      author,
	}
	cache.Set(draft.ID, draft, ttlcache.DefaultTTL)

	slog.Info("created ballot draft", "trace", ctx.Value(TraceKey), "id", draft.ID, "type", vt, "options", optionCount)
	return draft
}

// SubmitDraft claims a draft for posting, a draft can only be claimed once.
func SubmitDraft(ctx context.Context, cache DraftCache, draftID string) (*BallotDraft, error) {
	item := cache.Get(draftID)
	if item == nil {
		return nil, ErrDraftExpired
	}

	draft := item.Value()
	if !draft.Submitted.CompareAndSwap(false, true) {
		return nil, ErrDraftSubmitted
	}
	cache.Delete(draftID)

	slog.Info("submitted ballot draft", "trace", ctx.Value(TraceKey), "id", draftID)
	return draft, nil
}

const BallotModalKey = "ballot-modal"
const MaxModalTitle = 45
const MinBallotOptionLength = 2
const MaxBallotOptionLength = 100

func optionInputID(i int) string {
	return fmt.Sprintf("option_%d", i)
}

func modalTitle(question string) string {
	runes := []rune(question)
	if len(runes) <= MaxModalTitle {
		return question
	}
	return string(runes[:MaxModalTitle-1]) + "…"
}

func createBallotModal(draft *BallotDraft) *discordgo.InteractionResponse {
	var rows []discordgo.MessageComponent
	for i := 0; i < draft.OptionCount; i++ {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    optionInputID(i),
					Label:       fmt.Sprintf("Option %d", i+1),
					Style:       discordgo.TextInputShort,
					Placeholder: "Some Option",
					MinLength:   MinBallotOptionLength,
					MaxLength:   MaxBallotOptionLength,
					Required:    true,
				},
			},
		})
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   makeCustomID(BallotModalKey, draft.ID),
			Title:      modalTitle(draft.Question),
			Components: rows,
		},
	}
}

func makeCustomID(cond string, key string) string {
	return fmt.Sprintf("%s+%s", cond, key)
}

func parseCustomID(customID string) (string, string) {
	cond, key, _ := strings.Cut(customID, "+")
	return cond, key
}

// getModalValues flattens submitted text inputs by custom id, components arrive as pointers when decoded from the gateway.
func getModalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, row := range data.Components {
		var inputs []discordgo.MessageComponent
		switch r := row.(type) {
		case *discordgo.ActionsRow:
			inputs = r.Components
		case discordgo.ActionsRow:
			inputs = r.Components
		}
		for _, input := range inputs {
			switch ti := input.(type) {
			case *discordgo.TextInput:
				values[ti.CustomID] = ti.Value
			case discordgo.TextInput:
				values[ti.CustomID] = ti.Value
			}
		}
	}
	return values
}

func getBallotOptions(draft *BallotDraft, values map[string]string) ([]string, error) {
	options := make([]string, 0, draft.OptionCount)
	for i := 0; i < draft.OptionCount; i++ {
		id := optionInputID(i)
		value := strings.TrimSpace(values[id])
		if value == "" {
			return nil, OptionError{Name: id, ExpectedValue: "a non empty ballot option"}
		}
		options = append(options, value)
	}
	return options, nil
}
