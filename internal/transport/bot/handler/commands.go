package handler

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/service/widget"
	"feedback_widget/internal/domain/value"
	"feedback_widget/internal/transport/bot/view"
	"feedback_widget/pkg/logx"
	"feedback_widget/pkg/telegramx"
)

const (
	recentPageSize  = 5
	recentMaxLimit  = 100
	callbackPrefix  = "recent"
	maxCallbackData = 64
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnRecent(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)
	if len(args) < 1 {
		return h.sendHTML(ctx, msg.Chat.ID, view.RecentUsage)
	}

	text, keyboard := h.recentPage(ctx, args[0], 1)

	params := tu.Message(tu.ID(msg.Chat.ID), text).WithParseMode(telego.ModeHTML)
	if keyboard != nil {
		params = params.WithReplyMarkup(keyboard)
	}

	_, err := ctx.Bot().SendMessage(ctx, params)

	return err //nolint:wrapcheck
}

func (h *Handler) OnOrg(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)
	if len(args) < 1 {
		return h.sendHTML(ctx, msg.Chat.ID, view.OrgUsage)
	}

	return h.sendHTML(ctx, msg.Chat.ID, h.organizationText(ctx, args[0]))
}

func (h *Handler) OnLink(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)
	if len(args) < 2 {
		return h.sendHTML(ctx, msg.Chat.ID, view.LinkUsage)
	}

	return h.sendHTML(ctx, msg.Chat.ID, h.linkText(args[0], args[1]))
}

func (h *Handler) OnMute(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)
	if len(args) < 1 {
		return h.sendHTML(ctx, msg.Chat.ID, view.MuteUsage)
	}

	return h.sendHTML(ctx, msg.Chat.ID, h.muteText(args[0]))
}

func (h *Handler) OnUnmute(ctx *th.Context, msg telego.Message) error {
	_, _, args := tu.ParseCommand(msg.Text)
	if len(args) < 1 {
		return h.sendHTML(ctx, msg.Chat.ID, view.UnmuteUsage)
	}

	return h.sendHTML(ctx, msg.Chat.ID, h.unmuteText(args[0]))
}

func (h *Handler) OnMuted(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.mutedText())
}

func (h *Handler) OnUnmuteAll(ctx *th.Context, msg telego.Message) error {
	h.muted.Clear()

	return h.sendHTML(ctx, msg.Chat.ID, view.UnmuteAllDone)
}

// recentPage страница списка отзывов и клавиатура пагинации к ней.
func (h *Handler) recentPage(ctx context.Context, rawID string, page int) (string, *telego.InlineKeyboardMarkup) {
	id, err := value.ParseOrganizationID(rawID)
	if err != nil {
		return view.InvalidOrgID, nil
	}

	records, err := h.svc.ListFeedback(ctx, id, recentMaxLimit)
	if err != nil {
		logger(ctx).Error("svc.ListFeedback", logx.Error(err))

		return view.LoadError, nil
	}

	if len(records) == 0 {
		return fmt.Sprintf(view.RecentEmpty, html.EscapeString(id.String())), nil
	}

	totalPages := (len(records) + recentPageSize - 1) / recentPageSize
	page = max(1, min(page, totalPages))

	start := (page - 1) * recentPageSize
	end := min(start+recentPageSize, len(records))

	title := "<code>" + html.EscapeString(id.String()) + "</code>"
	if name := h.svc.OrganizationName(ctx, id); name != "" {
		title = html.EscapeString(name) + " (" + title + ")"
	}

	header := fmt.Sprintf(view.RecentHeader, title, page, totalPages)
	items := records[start:end]

	// Остаток лимита сообщения делится поровну между комментариями.
	fixed, withComment := telegramx.TextLen(header), 0

	for _, record := range items {
		fixed += telegramx.TextLen(recentItem(record, ""))

		if record.Comment == "" {
			fixed += telegramx.TextLen(view.NoComment)
		} else {
			withComment++
		}
	}

	budget := 0
	if withComment > 0 {
		budget = (telegramx.MaxMessageLen - fixed) / withComment
	}

	var sb strings.Builder

	sb.WriteString(header)

	for _, record := range items {
		comment := view.NoComment
		if record.Comment != "" {
			comment = telegramx.EscapeLimit(record.Comment.String(), budget)
		}

		sb.WriteString(recentItem(record, comment))
	}

	return sb.String(), createPaginationKeyboard(id, page, totalPages)
}

func recentItem(record entity.Feedback, comment string) string {
	return fmt.Sprintf(
		view.RecentItem,
		record.Rating.Stars(),
		record.CreatedAt.UTC().Format(time.DateTime),
		html.EscapeString(record.LocationID.String()),
		comment,
	)
}

func (h *Handler) organizationText(ctx context.Context, rawID string) string {
	id, err := value.ParseOrganizationID(rawID)
	if err != nil {
		return view.InvalidOrgID
	}

	name := h.svc.OrganizationName(ctx, id)
	if name == "" {
		return fmt.Sprintf(view.OrgUnknown, html.EscapeString(id.String()))
	}

	return fmt.Sprintf(view.OrgFound, html.EscapeString(id.String()), html.EscapeString(name))
}

func (h *Handler) linkText(organizationID, locationID string) string {
	link, err := widget.NewLink(organizationID, locationID)
	if err != nil {
		return view.InvalidLink
	}

	return fmt.Sprintf(view.LinkTemplate, html.EscapeString(link.EntryURL(h.publicURL)))
}

func (h *Handler) muteText(rawID string) string {
	id, err := value.ParseOrganizationID(rawID)
	if err != nil {
		return view.InvalidOrgID
	}

	if !h.muted.Add(id) {
		return fmt.Sprintf(view.MuteExists, html.EscapeString(id.String()))
	}

	return fmt.Sprintf(view.MuteAdded, html.EscapeString(id.String()))
}

func (h *Handler) unmuteText(rawID string) string {
	id, err := value.ParseOrganizationID(rawID)
	if err != nil {
		return view.InvalidOrgID
	}

	if !h.muted.Remove(id) {
		return fmt.Sprintf(view.UnmuteMissing, html.EscapeString(id.String()))
	}

	return fmt.Sprintf(view.UnmuteDone, html.EscapeString(id.String()))
}

func (h *Handler) mutedText() string {
	ids := h.muted.List()
	if len(ids) == 0 {
		return view.MutedEmpty
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(view.MutedHeader, len(ids)))

	for i, id := range ids {
		sb.WriteString(fmt.Sprintf(view.MutedItem, i+1, html.EscapeString(id.String())))
	}

	return sb.String()
}

func createPaginationKeyboard(id value.OrganizationID, page, totalPages int) *telego.InlineKeyboardMarkup {
	if totalPages < 2 || len(callbackData(id, totalPages)) > maxCallbackData {
		return nil
	}

	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(callbackData(id, page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData("noop"))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(callbackData(id, page+1)))
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(buttons...),
	)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    tu.ID(chatID),
		Text:      text,
		ParseMode: telego.ModeHTML,
	})

	return err //nolint:wrapcheck
}
