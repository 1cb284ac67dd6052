package handler

import (
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"feedback_widget/internal/domain/value"
	"feedback_widget/internal/transport/bot/view"
	"feedback_widget/pkg/logx"
)

// Формат: "recent:<page>:<organization id>", id в конце, он может содержать ':'.
func callbackData(id value.OrganizationID, page int) string {
	return callbackPrefix + ":" + strconv.Itoa(page) + ":" + id.String()
}

func parseCallbackData(data string) (string, int, bool) {
	rest, ok := strings.CutPrefix(data, callbackPrefix+":")
	if !ok {
		return "", 0, false
	}

	rawPage, id, ok := strings.Cut(rest, ":")
	if !ok || id == "" {
		return "", 0, false
	}

	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}

	return id, page, true
}

func (h *Handler) OnRecentCallback(ctx *th.Context, query telego.CallbackQuery) error {
	id, page, ok := parseCallbackData(query.Data)
	if !ok {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText(view.CallbackFailure).WithShowAlert())

		return nil
	}

	text, keyboard := h.recentPage(ctx, id, page)

	if query.Message != nil {
		_, err := ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
			ChatID:      tu.ID(query.Message.GetChat().ID),
			MessageID:   query.Message.GetMessageID(),
			Text:        text,
			ParseMode:   telego.ModeHTML,
			ReplyMarkup: keyboard,
		})
		// Telegram отвечает ошибкой, если текст не изменился.
		if err != nil {
			logger(ctx).Debug("bot.EditMessageText", logx.Error(err))
		}
	}

	_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))

	return nil
}

func (h *Handler) OnNoopCallback(ctx *th.Context, query telego.CallbackQuery) error {
	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID)) //nolint:wrapcheck
}
