// internal/bot/commands.go
package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Commands the dispatcher understands. Everything else gets the
// unknown-command reply.
const (
	CommandSearch   = "search"
	CommandAdd      = "add"
	CommandList     = "list"
	CommandReport   = "report"
	CommandSettings = "settings"
	CommandHelp     = "help"
)

// User-facing texts are Czech by design; they are presentation, the
// payload stays English.
const (
	msgSearchUsage = "❌ Použití: `!search [dotaz]`\nPříklad: `!search pánev tefal do 1000 Kč`"
	msgAddUsage    = "❌ Použití: `!add [produkt]`\nPříklad: `!add Rychlovarná konvice Philips, max 800 Kč, nerez`"
	msgSearchFail  = "❌ Chyba při vyhledávání. Zkuste to znovu později."
	msgAddFail     = "❌ Chyba při přidávání produktu. Zkuste to znovu později."
	msgListFail    = "❌ Chyba při načítání seznamu. Zkuste to znovu později."
	msgReportFail  = "❌ Chyba při generování reportu. Zkuste to znovu později."
	msgUnknown     = "❌ Neznámý příkaz. Použij `!help` pro seznam příkazů."
)

type Dispatcher struct {
	relay        *RelayClient
	prefix       string
	dashboardURL string
}

func NewDispatcher(relay *RelayClient, prefix, dashboardURL string) *Dispatcher {
	return &Dispatcher{
		relay:        relay,
		prefix:       prefix,
		dashboardURL: dashboardURL,
	}
}

// ParseCommand splits a prefixed message into a lowercase command token
// and its free-text argument (remaining tokens rejoined with single
// spaces). ok is false when the message does not start with the prefix.
func ParseCommand(prefix, content string) (command, arg string, ok bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", "", false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", "", false
	}

	return strings.ToLower(fields[0]), strings.Join(fields[1:], " "), true
}

// Handle processes one chat message end to end and returns the reply to
// show the user. An empty reply means the message was not a command.
func (d *Dispatcher) Handle(ctx context.Context, content, userID, channelID string) string {
	command, arg, ok := ParseCommand(d.prefix, content)
	if !ok {
		return ""
	}

	switch command {
	case CommandSearch:
		if arg == "" {
			return msgSearchUsage
		}
		if err := d.dispatch(ctx, command, arg, userID, channelID); err != nil {
			return msgSearchFail
		}
		return fmt.Sprintf("🔍 Hledám: **%s**...", arg)

	case CommandAdd:
		if arg == "" {
			return msgAddUsage
		}
		if err := d.dispatch(ctx, command, arg, userID, channelID); err != nil {
			return msgAddFail
		}
		return fmt.Sprintf("✅ Přidávám ke sledování: **%s**", arg)

	case CommandList:
		if err := d.dispatch(ctx, command, "", userID, channelID); err != nil {
			return msgListFail
		}
		return "📋 Načítám tvoje sledované produkty..."

	case CommandReport:
		if err := d.dispatch(ctx, command, "", userID, channelID); err != nil {
			return msgReportFail
		}
		return "📊 Generuji report..."

	case CommandSettings:
		return fmt.Sprintf("⚙️ **Nastavení**\nPro úpravu nastavení navštiv web dashboard:\n🌐 %s", d.dashboardURL)

	case CommandHelp:
		return helpText()

	default:
		return msgUnknown
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, command, query, userID, channelID string) error {
	err := d.relay.Dispatch(ctx, Payload{
		Command:   command,
		UserQuery: query,
		UserID:    userID,
		ChannelID: channelID,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"command": command,
			"user_id": userID,
		}).Error("Relay dispatch failed")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"command": command,
		"user_id": userID,
	}).Info("Command dispatched")
	return nil
}

func helpText() string {
	var b strings.Builder
	b.WriteString("❓ **Product Tracker - Nápověda**\nDostupné příkazy:\n\n")
	b.WriteString("🔍 `!search [dotaz]` — Prohledá e-shopy\nPříklad: `!search pánev tefal do 1000 Kč`\n\n")
	b.WriteString("➕ `!add [produkt]` — Přidá produkt ke sledování\nPříklad: `!add Rychlovarná konvice Philips, max 800 Kč`\n\n")
	b.WriteString("📋 `!list` — Zobrazí tvoje sledované produkty\n")
	b.WriteString("📊 `!report` — Vygeneruje kompletní report\n")
	b.WriteString("⚙️ `!settings` — Odkaz na web dashboard\n")
	return b.String()
}
