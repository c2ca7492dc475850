package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fatecord/app/fate"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

type ctxKey string

const TraceKey ctxKey = "trace"

// DiscordApi is the part of *discordgo.Session the handlers talk to.
type DiscordApi interface {
	StatusUpdater
	CommandRegistrar
	InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponse(i *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
}

type State struct {
	Dg        DiscordApi
	AppID     string
	Guilds    GuildStore
	Drafts    DraftCache
	Presence  *Presence
	Schedule  string
	NewSource func() fate.Source
}

func MakeState(dg DiscordApi, cfg Config, guilds GuildStore) State {
	return State{
		Dg:        dg,
		AppID:     cfg.AppID,
		Guilds:    guilds,
		Drafts:    MakeDraftCache(cfg.DraftTTL),
		Presence:  MakePresence(dg, guilds),
		Schedule:  cfg.PresenceSchedule,
		NewSource: func() fate.Source { return fate.NewSource() },
	}
}

var ErrUserNotProvided = errors.New("user not provided")

func interactionUser(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User
	}
	return ic.User
}

func (state *State) HandleInteractionCreate(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	trace := uuid.NewString()
	ctx := context.WithValue(context.Background(), TraceKey, trace)

	switch ic.Type {
	case discordgo.InteractionPing:
		slog.Debug("received a ping", "trace", trace)
	case discordgo.InteractionApplicationCommand:
		cmd := ic.ApplicationCommandData()
		slog.Info("received a command", "trace", trace, "name", cmd.Name, "options", formatOptions(cmd.Options))

		var err error
		switch cmd.Name {
		case "ballot":
			err = HandleBallot(ctx, state, ic)
		case "rollfate":
			err = HandleRollFate(ctx, state, ic)
		default:
			slog.Error("unknown command", "trace", trace, "name", cmd.Name)
			interactionRespond(state.Dg, ic.Interaction, createStringResponse("That command is not known!"))
		}
		// a handler returning an error has not responded yet
		if err != nil {
			handleInteractionError(ctx, state.Dg, ic, err)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		interactionRespond(state.Dg, ic.Interaction, createAutocompleteResponse(nil))
	case discordgo.InteractionMessageComponent:
		msg := ic.MessageComponentData()
		slog.Warn("unknown message component", "trace", trace, "name", msg.CustomID)
	case discordgo.InteractionModalSubmit:
		modal := ic.ModalSubmitData()
		slog.Info("received a modal submit", "trace", trace, "name", modal.CustomID)

		cond, key := parseCustomID(modal.CustomID)
		switch cond {
		case BallotModalKey:
			if err := HandleBallotModal(ctx, state, ic, key); err != nil {
				handleInteractionError(ctx, state.Dg, ic, err)
			}
		default:
			slog.Warn("unknown modal condition", "trace", trace, "name", modal.CustomID, "cond", cond)
		}
	}
}

func HandleRollFate(_ context.Context, state *State, ic *discordgo.InteractionCreate) error {
	options := ic.ApplicationCommandData().Options

	dice, err := getDiceOpt(options, "dice")
	if err != nil {
		return err
	}
	base, err := getBaseOpt(options, "base")
	if err != nil {
		return err
	}

	result := fate.Roll(state.NewSource(), dice)
	interactionRespond(state.Dg, ic.Interaction, createStringResponse(fate.Format(result, base)))
	return nil
}

var BallotSubCmds = []string{"new"}

func HandleBallot(ctx context.Context, state *State, ic *discordgo.InteractionCreate) error {
	subCmd, options := getSubcommand(ic)
	switch subCmd {
	case "new":
		return HandleNewBallot(ctx, state, ic, options)
	default:
		return SubCmdError{Name: subCmd, ExpectedValues: BallotSubCmds}
	}
}

func HandleNewBallot(ctx context.Context, state *State, ic *discordgo.InteractionCreate, options dataOptions) error {
	question, err := getQuestionOpt(options, "question")
	if err != nil {
		return err
	}
	vt, err := getVotingTypeOpt(options, "type")
	if err != nil {
		return err
	}
	count, err := getOptionCountOpt(options, "options")
	if err != nil {
		return err
	}

	user := interactionUser(ic)
	if user == nil {
		return ErrUserNotProvided
	}

	draft := CreateDraft(ctx, state.Drafts, question, vt, count, user.Username)
	interactionRespond(state.Dg, ic.Interaction, createBallotModal(draft))
	return nil
}

func HandleBallotModal(ctx context.Context, state *State, ic *discordgo.InteractionCreate, draftID string) error {
	trace := ctx.Value(TraceKey)

	draft, err := SubmitDraft(ctx, state.Drafts, draftID)
	if errors.Is(err, ErrDraftExpired) {
		interactionRespond(state.Dg, ic.Interaction, createEphemeralResponse("This ballot has expired, use `/ballot new` to start again."))
		return nil
	}
	if errors.Is(err, ErrDraftSubmitted) {
		interactionRespond(state.Dg, ic.Interaction, createEphemeralResponse("This ballot was already submitted."))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to submit draft=%s: %w", draftID, err)
	}

	options, err := getBallotOptions(draft, getModalValues(ic.ModalSubmitData()))
	if err != nil {
		return err
	}

	interactionRespond(state.Dg, ic.Interaction, createEmbedResponse(createBallotEmbed(draft, options)))

	msg, err := state.Dg.InteractionResponse(ic.Interaction)
	if err != nil {
		slog.Error("failed to fetch ballot message", "trace", trace, "draft", draftID, "err", err)
		return nil
	}
	if err := state.Dg.MessageReactionAdd(msg.ChannelID, msg.ID, draft.Type.Emoji()); err != nil {
		slog.Error("failed to react to ballot message", "trace", trace, "draft", draftID, "err", err)
	}
	return nil
}

func (state *State) HandleReady(_ *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("connected to gateway", "user", ready.User.Username, "guilds", len(ready.Guilds))
	if state.Presence != nil {
		if err := state.Presence.Start(state.Schedule); err != nil {
			slog.Error("failed to start presence", "err", err)
		}
	}
}

func (state *State) HandleGuildCreate(s *discordgo.Session, gc *discordgo.GuildCreate) {
	ctx := context.WithValue(context.Background(), TraceKey, uuid.NewString())
	slog.Info("the guild has added the bot", "trace", ctx.Value(TraceKey), "guild", gc.ID, "name", gc.Name)

	appID := state.AppID
	if appID == "" && s != nil && s.State != nil && s.State.User != nil {
		appID = s.State.User.ID
	}

	if err := RegisterGuild(ctx, state.Dg, state.Guilds, appID, gc.Guild); err != nil {
		slog.Error("failed to register guild commands", "trace", ctx.Value(TraceKey), "guild", gc.ID, "err", err)
	}
}

func (state *State) HandleGuildDelete(_ *discordgo.Session, gd *discordgo.GuildDelete) {
	ctx := context.WithValue(context.Background(), TraceKey, uuid.NewString())
	if gd.Unavailable {
		slog.Warn("guild is unavailable", "trace", ctx.Value(TraceKey), "guild", gd.ID)
		return
	}
	if err := state.Guilds.DeleteGuild(ctx, gd.ID); err != nil {
		slog.Error("failed to delete guild", "trace", ctx.Value(TraceKey), "guild", gd.ID, "err", err)
		return
	}
	slog.Info("the guild has removed the bot", "trace", ctx.Value(TraceKey), "guild", gd.ID)
}

func (state *State) HandleMessageCreate(_ *discordgo.Session, mc *discordgo.MessageCreate) {
	if mc.Author == nil || mc.Author.Bot {
		return
	}
	if mc.Content == "!hello" {
		if _, err := state.Dg.ChannelMessageSend(mc.ChannelID, "world!"); err != nil {
			slog.Error("failed to send message", "channel", mc.ChannelID, "err", err)
		}
	}
}

func interactionRespond(dg DiscordApi, i *discordgo.Interaction, r *discordgo.InteractionResponse) {
	if err := dg.InteractionRespond(i, r); err != nil {
		slog.Error("failed to send interaction response", "err", err)
	}
}

const InternalServerErrorMsg = "An unexpected error occurred"

func handleInteractionError(ctx context.Context, dg DiscordApi, ic *discordgo.InteractionCreate, err error) {
	trace := ctx.Value(TraceKey)
	slog.Error("error when handling interaction", "trace", trace, "err", err)

	content := InternalServerErrorMsg

	var optErr OptionError
	var subCmdErr SubCmdError
	if errors.As(err, &optErr) || errors.As(err, &subCmdErr) {
		content = err.Error()
	}

	if err := dg.InteractionRespond(ic.Interaction, createEphemeralResponse(content)); err != nil {
		slog.Error("failed to respond interaction error", "trace", trace, "err", err)
	}
}
