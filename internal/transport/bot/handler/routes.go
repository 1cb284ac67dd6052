package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"feedback_widget/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminIDs []int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminIDs...))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("help"))
	adminGroup.HandleMessage(h.OnRecent, th.CommandEqual("recent"))
	adminGroup.HandleMessage(h.OnOrg, th.CommandEqual("org"))
	adminGroup.HandleMessage(h.OnLink, th.CommandEqual("link"))
	adminGroup.HandleMessage(h.OnMute, th.CommandEqual("mute"))
	adminGroup.HandleMessage(h.OnUnmute, th.CommandEqual("unmute"))
	adminGroup.HandleMessage(h.OnMuted, th.CommandEqual("muted"))
	adminGroup.HandleMessage(h.OnUnmuteAll, th.CommandEqual("unmuteall"))

	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminIDs...))

	cbGroup.HandleCallbackQuery(h.OnRecentCallback, th.CallbackDataPrefix(callbackPrefix+":"))
	cbGroup.HandleCallbackQuery(h.OnNoopCallback, th.CallbackDataEqual("noop"))
}
