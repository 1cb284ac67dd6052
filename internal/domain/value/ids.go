package value

import (
	"strings"

	"github.com/rs/xid"

	"feedback_widget/internal/domain"
	"feedback_widget/pkg/errcodes"
)

const (
	maxOrganizationIDLen = 128
	maxLocationIDLen     = 512
)

// OrganizationID идентификатор организации (hospital_id).
type OrganizationID string

func (id OrganizationID) String() string {
	return string(id)
}

func ParseOrganizationID(s string) (OrganizationID, error) {
	s = strings.TrimSpace(s)

	if s == "" || len(s) > maxOrganizationIDLen {
		return "", domain.NewError(domain.KindInvalidArgument, errcodes.InvalidOrganizationID, "invalid organization id")
	}

	return OrganizationID(s), nil
}

// LocationID идентификатор места в каталоге отзывов (place_id).
type LocationID string

func (id LocationID) String() string {
	return string(id)
}

func ParseLocationID(s string) (LocationID, error) {
	s = strings.TrimSpace(s)

	if s == "" || len(s) > maxLocationIDLen {
		return "", domain.NewError(domain.KindInvalidArgument, errcodes.InvalidFeedbackLink, "invalid location id")
	}

	return LocationID(s), nil
}

// SessionID идентификатор виджет-сессии.
type SessionID string

func NewSessionID() SessionID {
	return SessionID(xid.New().String())
}

func (id SessionID) String() string {
	return string(id)
}

func ParseSessionID(s string) (SessionID, error) {
	parsed, err := xid.FromString(s)
	if err != nil {
		return "", domain.NewError(domain.KindInvalidArgument, errcodes.InvalidSessionID, "invalid session id")
	}

	return SessionID(parsed.String()), nil
}
