package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"nexus-terminal/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// PriceReader is the snapshot source the bot quotes from.
type PriceReader interface {
	GetPrices(ctx context.Context) domain.PriceSnapshot
}

// StartTelegramBot launches the Telegram bot when a token is configured.
// Non-blocking; without a token it is a no-op.
func StartTelegramBot(token string, prices PriceReader) {
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/price", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send(fmt.Sprintf("Usage: /price btc\nSupported: %s", strings.Join(domain.SupportedSymbols, ", ")))
		}
		symbol := strings.ToLower(args[0])
		if _, ok := domain.CoinGeckoID[symbol]; !ok {
			return c.Send(fmt.Sprintf("Unknown symbol: %s\nSupported: %s", symbol, strings.Join(domain.SupportedSymbols, ", ")))
		}

		snap := prices.GetPrices(context.Background())
		msg := fmt.Sprintf(
			"%s\nPrice: $%.4f\n24h Change: %.2f%%\nSource: %s",
			strings.ToUpper(symbol), snap.Prices[symbol], snap.Changes[symbol], snap.Source,
		)
		return c.Send(msg)
	})

	b.Handle("/chains", func(c tele.Context) error {
		var sb strings.Builder
		sb.WriteString("Supported chains:\n")
		for _, chain := range domain.Chains() {
			fmt.Fprintf(&sb, "%s (%s)\n", chain.Name, chain.Symbol)
		}
		return c.Send(sb.String())
	})

	log.Println("Telegram bot started")
	go b.Start()
}
