// internal/bot/discord.go
package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// handleTimeout bounds a single command end to end, including the relay
// call.
const handleTimeout = 15 * time.Second

type Bot struct {
	session    *discordgo.Session
	dispatcher *Dispatcher
}

func New(token string, dispatcher *Dispatcher) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session:    session,
		dispatcher: dispatcher,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)

	return b, nil
}

func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logrus.WithFields(logrus.Fields{
		"username": r.User.Username,
		"guilds":   len(r.Guilds),
	}).Info("Discord bot logged in")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	reply := b.dispatcher.Handle(ctx, m.Content, m.Author.ID, m.ChannelID)
	if reply == "" {
		return
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		logrus.WithError(err).Error("Failed to send reply")
	}
}
