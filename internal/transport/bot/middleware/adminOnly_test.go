package middleware

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	admins := []int64{10, 20}

	testCases := []struct {
		name   string
		update telego.Update
		want   bool
	}{
		{
			name:   "admin message",
			update: telego.Update{Message: &telego.Message{From: &telego.User{ID: 10}}},
			want:   true,
		},
		{
			name:   "stranger message",
			update: telego.Update{Message: &telego.Message{From: &telego.User{ID: 11}}},
		},
		{
			name:   "channel post without sender",
			update: telego.Update{Message: &telego.Message{}},
		},
		{
			name:   "admin callback",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: 20}}},
			want:   true,
		},
		{
			name:   "stranger callback",
			update: telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: 30}}},
		},
		{
			name:   "other update",
			update: telego.Update{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, allowed(tc.update, admins))
		})
	}
}

func TestAllowedWithoutAdmins(t *testing.T) {
	require.False(t, allowed(telego.Update{Message: &telego.Message{From: &telego.User{ID: 10}}}, nil))
}
