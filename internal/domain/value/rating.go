package value

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"feedback_widget/internal/domain"
	"feedback_widget/pkg/errcodes"
)

const (
	NoRating  Rating = 0
	MinRating Rating = 1
	MaxRating Rating = 5

	MaxCommentLen = 4000
)

// Rating оценка 1..5, 0 означает "не выбрана".
type Rating int

func ParseRating(n int) (Rating, error) {
	r := Rating(n)

	if r < MinRating || r > MaxRating {
		return NoRating, domain.NewError(domain.KindInvalidArgument, errcodes.InvalidRating, "rating must be between 1 and 5")
	}

	return r, nil
}

// ParseRatingString разбирает значение поля формы.
func ParseRatingString(s string) (Rating, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return NoRating, domain.NewError(domain.KindInvalidArgument, errcodes.InvalidRating, "rating must be a number")
	}

	return ParseRating(n)
}

func (r Rating) Int() int {
	return int(r)
}

func (r Rating) IsMax() bool {
	return r == MaxRating
}

// Stars рисует оценку звёздами, например ★★☆☆☆.
func (r Rating) Stars() string {
	n := int(max(NoRating, min(r, MaxRating)))

	return strings.Repeat("★", n) + strings.Repeat("☆", int(MaxRating)-n)
}

// Comment текст отзыва, может быть пустым.
type Comment string

func ParseComment(s string) (Comment, error) {
	if utf8.RuneCountInString(s) > MaxCommentLen {
		return "", domain.NewError(domain.KindInvalidArgument, errcodes.InvalidComment, "comment is too long")
	}

	// Postgres TEXT не принимает ни битый UTF-8, ни NUL.
	if !utf8.ValidString(s) || strings.ContainsRune(s, 0) {
		return "", domain.NewError(domain.KindInvalidArgument, errcodes.InvalidComment, "comment contains invalid characters")
	}

	return Comment(s), nil
}

func (c Comment) String() string {
	return string(c)
}
