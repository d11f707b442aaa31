package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/go-logr/logr"

	"slotbot/internal/application"
	"slotbot/internal/config"
	"slotbot/internal/ports/input"
	"slotbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	sweeper input.SweepUseCase
	logger  logr.Logger
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(cfg *config.Config, store output.RowStore, translator output.Translator, logger logr.Logger) (*Bot, error) {
	settings := application.Settings{
		MaxPerSlot: cfg.MaxPerSlot,
		Slots:      cfg.Slots,
		Retention:  cfg.Retention(),
		SweepDay:   cfg.SweepDay,
		Location:   cfg.Location,
	}
	gate := application.NewLedgerGate()
	registrationUC := application.NewRegistrationService(store, gate, settings, logger)
	queryUC := application.NewQueryService(store, settings)
	sweeper := application.NewSweeper(store, gate, settings, logger)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	// One command may wait on the ledger gate behind others; 4 store calls is the worst case.
	handler := NewHandler(registrationUC, queryUC, translator, cfg.Slots, cfg.CommandPrefix, 4*cfg.StoreTimeout, logger)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
		sweeper: sweeper,
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handler.HandleMessage)
	b.session.AddHandler(b.handleReady)
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("🤖 Connecté", "user", r.User.String())
	if b.config.PostEntryMessage {
		b.handler.PostEntryMessages(s, r.Guilds, b.config.RegistrationChannel)
	}
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handler.HandleCommand(s, i)
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case customIDRegister:
			b.handler.HandleRegisterButton(s, i)
		case customIDSelectSlot:
			b.handler.HandleSlotSelect(s, i)
		}
	}
}

// Run opens the session, registers the slash commands and runs the sweep
// scheduler until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range b.handler.applicationCommands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			b.logger.Error(err, "⚠️ Erreur lors de l'enregistrement de la commande", "command", cmd.Name)
		}
	}

	b.logger.Info("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	RunSweeps(ctx, b.sweeper, b.config.SweepInterval, b.logger)
	return nil
}
