package telegram

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/gabapcia/tronwatch/internal/monitor"
)

// explorerTransactionURL is the public explorer page for a transaction hash.
const explorerTransactionURL = "https://tronscan.org/#/transaction/"

// occurredAtLayout renders event times in the chat message.
const occurredAtLayout = "2006-01-02 15:04:05 MST"

// formatStartup renders the message announcing that monitoring began.
func formatStartup(wallet string, interval time.Duration) string {
	var b strings.Builder

	b.WriteString("🚀 <b>Wallet monitor started</b>\n\n")
	fmt.Fprintf(&b, "👀 Monitoring wallet: <code>%s</code>\n", html.EscapeString(wallet))
	fmt.Fprintf(&b, "⏰ Check interval: %s\n", interval)
	fmt.Fprintf(&b, "🕒 Started at: %s\n\n", time.Now().UTC().Format(occurredAtLayout))
	b.WriteString("You will receive notifications for all incoming and outgoing transactions.")

	return b.String()
}

// formatEvent renders one admitted event as an HTML chat message. Rendering
// never fails: if formatting panics on unexpected data, a minimal message
// carrying the transaction id is returned instead.
func formatEvent(event monitor.Event) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = fmt.Sprintf("🔔 New transaction detected: %s", html.EscapeString(event.ID))
		}
	}()

	if event.Kind == monitor.KindToken {
		return formatTokenTransfer(event)
	}
	return formatNativeTransaction(event)
}

// formatNativeTransaction renders a native TRX transaction alert.
func formatNativeTransaction(event monitor.Event) string {
	var b strings.Builder

	b.WriteString("🔔 <b>New TRX Transaction!</b>\n\n")
	b.WriteString(directionLine(event.Direction, "📥 Incoming", "📤 Outgoing"))
	fmt.Fprintf(&b, "💰 <b>Amount:</b> %s TRX\n", event.Amount.String())
	fmt.Fprintf(&b, "👤 <b>From:</b> <code>%s</code>\n", html.EscapeString(event.From))
	fmt.Fprintf(&b, "👤 <b>To:</b> <code>%s</code>\n", html.EscapeString(event.To))
	fmt.Fprintf(&b, "📝 <b>Type:</b> %d\n", event.Metadata.ContractType)
	fmt.Fprintf(&b, "🕒 <b>Time:</b> %s\n", formatOccurredAt(event.OccurredAt))
	fmt.Fprintf(&b, "📦 <b>Block:</b> %d\n", event.Metadata.Block)
	fmt.Fprintf(&b, "📋 <b>Hash:</b> <code>%s</code>\n\n", html.EscapeString(event.ID))
	b.WriteString(explorerLink(event.ID))

	return b.String()
}

// formatTokenTransfer renders a TRC-20 transfer alert.
func formatTokenTransfer(event monitor.Event) string {
	symbol := event.Metadata.TokenSymbol
	if symbol == "" {
		symbol = "UNK"
	}

	statusLine := "✅ Success"
	if event.Metadata.Status != 0 {
		statusLine = fmt.Sprintf("⚠️ Status: %d", event.Metadata.Status)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "🪙 <b>New %s Transfer!</b>\n\n", html.EscapeString(symbol))
	b.WriteString(directionLine(event.Direction, "📥 Received", "📤 Sent"))
	fmt.Fprintf(&b, "💰 <b>Amount:</b> %s %s\n", event.Amount.String(), html.EscapeString(symbol))
	fmt.Fprintf(&b, "🏷️ <b>Token:</b> %s (%s)\n", html.EscapeString(event.Metadata.TokenName), html.EscapeString(symbol))
	fmt.Fprintf(&b, "👤 <b>From:</b> <code>%s</code>\n", html.EscapeString(event.From))
	fmt.Fprintf(&b, "👤 <b>To:</b> <code>%s</code>\n", html.EscapeString(event.To))
	fmt.Fprintf(&b, "📋 <b>Status:</b> %s\n", statusLine)
	fmt.Fprintf(&b, "🕒 <b>Time:</b> %s\n", formatOccurredAt(event.OccurredAt))
	fmt.Fprintf(&b, "📦 <b>Block:</b> %d\n", event.Metadata.Block)
	fmt.Fprintf(&b, "📋 <b>Hash:</b> <code>%s</code>\n\n", html.EscapeString(event.ID))
	b.WriteString(explorerLink(event.ID))

	return b.String()
}

func directionLine(d monitor.Direction, incoming, outgoing string) string {
	if d == monitor.DirectionIncoming {
		return incoming + "\n"
	}
	return outgoing + "\n"
}

func explorerLink(id string) string {
	return fmt.Sprintf("🔍 <a href=\"%s%s\">View on TronScan</a>", explorerTransactionURL, html.EscapeString(id))
}

// formatOccurredAt renders the event time, or N/A when it is unknown.
func formatOccurredAt(occurredAt time.Time) string {
	if occurredAt.IsZero() {
		return "N/A"
	}

	return occurredAt.UTC().Format(occurredAtLayout)
}
