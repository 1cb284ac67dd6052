package value_test

import (
	"strings"
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/errcodes"
)

func TestParseRating(t *testing.T) {
	rq := require.New(t)

	for n := 1; n <= 5; n++ {
		r, err := value.ParseRating(n)
		rq.NoError(err)
		rq.Equal(n, r.Int())
	}

	for _, n := range []int{-1, 0, 6, 100} {
		_, err := value.ParseRating(n)
		rq.Error(err)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.InvalidRating, code)
	}

	rq.True(value.MaxRating.IsMax())
	rq.False(value.Rating(4).IsMax())
}

func TestParseRatingString(t *testing.T) {
	rq := require.New(t)

	r, err := value.ParseRatingString(" 3 ")
	rq.NoError(err)
	rq.Equal(value.Rating(3), r)

	_, err = value.ParseRatingString("five")
	rq.True(domain.IsKind(err, domain.KindInvalidArgument))

	_, err = value.ParseRatingString("6")
	rq.True(domain.IsKind(err, domain.KindInvalidArgument))
}

func TestParseComment(t *testing.T) {
	rq := require.New(t)

	c, err := value.ParseComment("")
	rq.NoError(err)
	rq.Empty(c.String())

	_, err = value.ParseComment(strings.Repeat("ж", value.MaxCommentLen))
	rq.NoError(err)

	_, err = value.ParseComment(strings.Repeat("ж", value.MaxCommentLen+1))
	rq.True(domain.IsKind(err, domain.KindInvalidArgument))
}

func TestParseCommentRejectsInvalidText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "invalid utf8", text: "good\xffbad"},
		{name: "truncated rune", text: "ж"[:1]},
		{name: "nul byte", text: "before\x00after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := value.ParseComment(tt.text)
			rq.True(domain.IsKind(err, domain.KindInvalidArgument))

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(errcodes.InvalidComment, code)
		})
	}
}

func TestParseIDs(t *testing.T) {
	rq := require.New(t)

	org, err := value.ParseOrganizationID("  hosp-1 ")
	rq.NoError(err)
	rq.Equal("hosp-1", org.String())

	_, err = value.ParseOrganizationID("   ")
	rq.Error(err)

	_, err = value.ParseLocationID("")
	rq.Error(err)

	id := xid.New().String()
	sid, err := value.ParseSessionID(id)
	rq.NoError(err)
	rq.Equal(id, sid.String())

	_, err = value.ParseSessionID("not-an-xid")
	rq.True(domain.IsKind(err, domain.KindInvalidArgument))

	rq.Len(value.NewSessionID().String(), 20)
}

func TestRatingStars(t *testing.T) {
	rq := require.New(t)

	rq.Equal("☆☆☆☆☆", value.NoRating.Stars())
	rq.Equal("★★☆☆☆", value.Rating(2).Stars())
	rq.Equal("★★★★★", value.MaxRating.Stars())
	rq.Equal("★★★★★", value.Rating(9).Stars())
	rq.Equal("☆☆☆☆☆", value.Rating(-1).Stars())
}
