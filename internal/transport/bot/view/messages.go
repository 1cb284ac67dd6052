package view

const StartMessage = `👋 <b>Feedback widget bot</b>

Low rating alerts arrive in this chat automatically.

<b>Commands:</b>
/recent <code>ORG_ID</code> - latest feedback
/org <code>ORG_ID</code> - organization name
/link <code>ORG_ID</code> <code>PLACE_ID</code> - widget entry link
/mute <code>ORG_ID</code> - stop alerts for an organization
/unmute <code>ORG_ID</code> - resume alerts
/muted - muted organizations
/unmuteall - resume all alerts`

const (
	RecentUsage  = "❌ Usage: /recent <code>ORG_ID</code>"
	OrgUsage     = "❌ Usage: /org <code>ORG_ID</code>"
	LinkUsage    = "❌ Usage: /link <code>ORG_ID</code> <code>PLACE_ID</code>"
	MuteUsage    = "❌ Usage: /mute <code>ORG_ID</code>"
	UnmuteUsage  = "❌ Usage: /unmute <code>ORG_ID</code>"
	InvalidOrgID = "❌ Invalid organization id"
	InvalidLink  = "❌ Invalid organization or place id"
	LoadError    = "❌ Failed to load feedback"
	RecentEmpty  = "📭 No feedback for <code>%s</code> yet"

	RecentHeader = "📝 <b>Feedback</b> %s (page %d/%d)\n\n"
	RecentItem   = "%s <i>%s</i>\n📍 <code>%s</code>\n💬 %s\n\n"
	NoComment    = "<i>no comment</i>"

	OrgFound   = "🏥 <code>%s</code>: %s"
	OrgUnknown = "⚠️ Organization <code>%s</code> not found"

	LinkTemplate = "🔗 %s"

	MuteAdded       = "🔕 Alerts for <code>%s</code> muted"
	MuteExists      = "⚠️ <code>%s</code> is already muted"
	UnmuteDone      = "🔔 Alerts for <code>%s</code> resumed"
	UnmuteMissing   = "⚠️ <code>%s</code> is not muted"
	MutedEmpty      = "🔔 No muted organizations"
	MutedHeader     = "🔕 <b>Muted organizations (%d):</b>\n\n"
	MutedItem       = "%d. <code>%s</code>\n"
	UnmuteAllDone   = "🔔 All alerts resumed"
	CallbackFailure = "❌ Failed to load data"
)
