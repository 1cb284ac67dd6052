package widget

import (
	"net/url"
	"strings"

	"feedback_widget/internal/domain"
	"feedback_widget/internal/domain/value"
	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/lox"
)

const placeIDPlaceholder = "{placeId}"

//nolint:gochecknoglobals
var (
	locationParams     = []string{"placeId", "place_id", "locationId"}
	organizationParams = []string{"hospitalId", "hospital_id", "organizationId"}
)

// Link идентификаторы из входной ссылки виджета.
type Link struct {
	OrganizationID value.OrganizationID
	LocationID     value.LocationID
}

var errInvalidLink = domain.NewError(domain.KindInvalidArgument, errcodes.InvalidFeedbackLink, MessageInvalidLink) //nolint:gochecknoglobals

// ParseLink разбирает query входной ссылки. Без любого из идентификаторов
// ссылка невалидна.
func ParseLink(query url.Values) (Link, error) {
	return NewLink(
		lox.FirstNonEmpty(query.Get, organizationParams...),
		lox.FirstNonEmpty(query.Get, locationParams...),
	)
}

func NewLink(organizationID, locationID string) (Link, error) {
	orgID, err := value.ParseOrganizationID(organizationID)
	if err != nil {
		return Link{}, errInvalidLink
	}

	locID, err := value.ParseLocationID(locationID)
	if err != nil {
		return Link{}, errInvalidLink
	}

	return Link{OrganizationID: orgID, LocationID: locID}, nil
}

// ReviewURL подставляет идентификатор места в шаблон адреса страницы отзывов.
func ReviewURL(template string, locationID value.LocationID) string {
	return strings.ReplaceAll(template, placeIDPlaceholder, url.QueryEscape(locationID.String()))
}

// EntryURL собирает входную ссылку виджета для публичного адреса сервиса.
func (l Link) EntryURL(publicURL string) string {
	query := url.Values{}
	query.Set("hospitalId", l.OrganizationID.String())
	query.Set("placeId", l.LocationID.String())

	return strings.TrimRight(publicURL, "/") + "/feedback?" + query.Encode()
}
