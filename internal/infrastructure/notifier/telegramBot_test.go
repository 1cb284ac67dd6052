package notifier_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"feedback_widget/internal/domain/entity"
	"feedback_widget/internal/domain/value"
	"feedback_widget/internal/infrastructure/notifier"
	"feedback_widget/pkg/telegramx"
)

const testToken = "123456:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func TestFormatLowRating(t *testing.T) {
	createdAt := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		alert    entity.LowRatingAlert
		contains []string
		excludes []string
	}{
		{
			name: "full alert",
			alert: entity.LowRatingAlert{
				OrganizationID:   "hosp-1",
				LocationID:       "place-1",
				OrganizationName: "City Hospital",
				Rating:           2,
				Comment:          "long wait",
				CreatedAt:        createdAt,
			},
			contains: []string{
				"★★☆☆☆",
				"City Hospital (<code>hosp-1</code>)",
				"<code>place-1</code>",
				"long wait",
				"2026-10-16 09:30:00",
			},
		},
		{
			name: "unknown organization and empty comment",
			alert: entity.LowRatingAlert{
				OrganizationID: "hosp-2",
				LocationID:     "place-2",
				Rating:         1,
				CreatedAt:      createdAt,
			},
			contains: []string{"★☆☆☆☆", "<b>Organization:</b> <code>hosp-2</code>", "<i>no comment</i>"},
			excludes: []string{"()"},
		},
		{
			name: "html is escaped",
			alert: entity.LowRatingAlert{
				OrganizationID:   "hosp-3",
				OrganizationName: "A & B",
				LocationID:       "place-3",
				Rating:           3,
				Comment:          "<script>alert(1)</script>",
				CreatedAt:        createdAt,
			},
			contains: []string{"A &amp; B", "&lt;script&gt;"},
			excludes: []string{"<script>"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			text := notifier.FormatLowRating(tc.alert)

			for _, s := range tc.contains {
				rq.Contains(text, s)
			}

			for _, s := range tc.excludes {
				rq.NotContains(text, s)
			}
		})
	}
}

func TestFormatLowRatingFitsMessageLimit(t *testing.T) {
	testCases := []struct {
		name    string
		comment string
	}{
		{name: "cyrillic", comment: strings.Repeat("ж", value.MaxCommentLen)},
		{name: "escaped markup", comment: strings.Repeat("<&>", value.MaxCommentLen/3)},
		{name: "emoji", comment: strings.Repeat("👎", value.MaxCommentLen)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			text := notifier.FormatLowRating(entity.LowRatingAlert{
				OrganizationID:   strings.Repeat("o", 128),
				LocationID:       strings.Repeat("l", 512),
				OrganizationName: "City Hospital",
				Rating:           1,
				Comment:          tc.comment,
				CreatedAt:        time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
			})

			rq.LessOrEqual(telegramx.TextLen(text), telegramx.MaxMessageLen)
			rq.Contains(text, "…")
			rq.Contains(text, "2026-10-16 09:30:00")
		})
	}
}

func TestTelegramBotSendLowRating(t *testing.T) {
	rq := require.New(t)

	type sendMessageRequest struct {
		ChatID    int64  `json:"chat_id"`
		Text      string `json:"text"`
		ParseMode string `json:"parse_mode"`
	}

	var (
		path    string
		request sendMessageRequest
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path

		body, _ := io.ReadAll(r.Body)
		_ = jsoniter.Unmarshal(body, &request)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"group"}}}`))
	}))
	defer server.Close()

	bot, err := notifier.NewBot(testToken, server.Client(), telego.WithAPIServer(server.URL))
	rq.NoError(err)

	tg := notifier.NewTelegramBot(bot, 42)

	err = tg.SendLowRating(context.Background(), entity.LowRatingAlert{
		OrganizationID: "hosp-1",
		LocationID:     "place-1",
		Rating:         2,
		Comment:        "long wait",
	})
	rq.NoError(err)

	rq.True(strings.HasSuffix(path, "/sendMessage"))
	rq.Equal(int64(42), request.ChatID)
	rq.Equal(telego.ModeHTML, request.ParseMode)
	rq.Contains(request.Text, "long wait")
}

func TestTelegramBotSendError(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer server.Close()

	bot, err := notifier.NewBot(testToken, server.Client(), telego.WithAPIServer(server.URL))
	rq.NoError(err)

	err = notifier.NewTelegramBot(bot, 42).SendText(context.Background(), "ping")
	rq.Error(err)
}

func TestNewBotInvalidToken(t *testing.T) {
	_, err := notifier.NewBot("not-a-token", http.DefaultClient)
	require.Error(t, err)
}
