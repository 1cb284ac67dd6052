package notifier

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/telegramx"
)

type sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

type TelegramBot struct {
	bot    sender
	chatID int64
}

// NewBot создаёт клиента Bot API поверх переданного http клиента.
func NewBot(token string, httpClient *http.Client, options ...telego.BotOption) (*telego.Bot, error) {
	options = append([]telego.BotOption{telego.WithHTTPClient(httpClient), telego.WithDiscardLogger()}, options...)

	bot, err := telego.NewBot(token, options...)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return bot, nil
}

func NewTelegramBot(bot sender, chatID int64) *TelegramBot {
	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}
}

// SendLowRating отправляет алерт о низкой оценке в чат персонала.
func (b *TelegramBot) SendLowRating(ctx context.Context, alert entity.LowRatingAlert) error {
	msg := tu.Message(
		tu.ID(b.chatID),
		FormatLowRating(alert),
	).WithParseMode(telego.ModeHTML)

	_, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// FormatLowRating собирает текст алерта. Комментарий обрезается так, чтобы
// сообщение уложилось в лимит Bot API.
func FormatLowRating(alert entity.LowRatingAlert) string {
	organization := "<code>" + html.EscapeString(alert.OrganizationID) + "</code>"
	if alert.OrganizationName != "" {
		organization = html.EscapeString(alert.OrganizationName) + " (" + organization + ")"
	}

	format := func(comment string) string {
		return fmt.Sprintf(
			"⚠️ <b>LOW RATING</b> %s\n\n"+
				"🏥 <b>Organization:</b> %s\n"+
				"📍 <b>Location:</b> <code>%s</code>\n"+
				"💬 <b>Feedback:</b> %s\n\n"+
				"🕒 %s",
			value.Rating(alert.Rating).Stars(),
			organization,
			html.EscapeString(alert.LocationID),
			comment,
			alert.CreatedAt.UTC().Format(time.DateTime),
		)
	}

	comment := "<i>no comment</i>"
	if strings.TrimSpace(alert.Comment) != "" {
		comment = telegramx.EscapeLimit(alert.Comment, telegramx.MaxMessageLen-telegramx.TextLen(format("")))
	}

	return format(comment)
}
