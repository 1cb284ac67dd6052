package telegramx

import (
	"html"
	"strings"
	"unicode/utf16"
)

// MaxMessageLen предел длины текста сообщения Bot API в единицах UTF-16.
const MaxMessageLen = 4096

const ellipsis = "…"

// TextLen длина строки так, как её считает Telegram.
func TextLen(s string) int {
	n := 0

	for _, r := range s {
		n += max(1, utf16.RuneLen(r))
	}

	return n
}

// EscapeLimit экранирует s для ParseMode HTML и обрезает результат до limit.
// Сущности не разрезаются, обрезанный текст заканчивается многоточием.
func EscapeLimit(s string, limit int) string {
	escaped := html.EscapeString(s)
	if TextLen(escaped) <= limit {
		return escaped
	}

	budget := limit - TextLen(ellipsis)
	if budget <= 0 {
		return ""
	}

	var sb strings.Builder

	for _, r := range s {
		piece := html.EscapeString(string(r))

		n := TextLen(piece)
		if n > budget {
			break
		}

		budget -= n

		sb.WriteString(piece)
	}

	sb.WriteString(ellipsis)

	return sb.String()
}
