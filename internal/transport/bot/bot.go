package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"feedback_widget/internal/transport/bot/handler"
	"feedback_widget/pkg/contextx"
	"feedback_widget/pkg/logx"
)

const (
	pollingTimeoutSeconds = 30
	stopTimeout           = 5 * time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Bot бот персонала: алерты приходят через notifier, команды обрабатываются здесь.
type Bot struct {
	bot      *telego.Bot
	handler  *handler.Handler
	adminIDs []int64
}

func New(bot *telego.Bot, h *handler.Handler, adminIDs []int64) *Bot {
	return &Bot{
		bot:      bot,
		handler:  h,
		adminIDs: adminIDs,
	}
}

// Run получает обновления long polling'ом до отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        pollingTimeoutSeconds,
		AllowedUpdates: []string{"message", "callback_query"},
	})
	if err != nil {
		return fmt.Errorf("failed to get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("failed to create bot handler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.adminIDs)

	done := make(chan error, 1)

	go func() {
		done <- botHandler.Start()
	}()

	logger(ctx).Info("bot started", "admins", len(b.adminIDs))

	select {
	case err = <-done:
		if err != nil {
			return fmt.Errorf("botHandler.Start: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer cancel()

	if err = botHandler.StopWithContext(stopCtx); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	<-done

	logger(ctx).Info("bot stopped")

	return nil
}
