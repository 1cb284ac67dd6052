package server_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"feedback_widget/pkg/errcodes"
	"feedback_widget/pkg/rest"
)

func TestGetOrganization(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	e := newEnv(t)

	var organization rest.Organization

	resp, err := e.client.Get(ctx, "/v1/organizations/hosp-1", nil, &organization, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(rest.Organization{ID: "hosp-1", Name: "City Clinic"}, organization)

	var apiErr rest.Error

	resp, err = e.client.Get(ctx, "/v1/organizations/unknown", nil, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.OrganizationNotFound), apiErr.Code)
}

func TestListOrganizationFeedback(t *testing.T) {
	t.Parallel()

	rq := require.New(t)
	ctx := context.Background()
	e := newEnv(t)

	staff := http.Header{"Authorization": []string{"Bearer " + staffToken}}

	var list rest.FeedbackList

	resp, err := e.client.Get(ctx, "/v1/organizations/hosp-1/feedback?limit=10", staff, &list, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(list.Items, 2)
	rq.Equal(int64(2), list.Items[0].ID)
	rq.Equal("Long wait", list.Items[0].Comment)
	rq.Equal(5, list.Items[1].Rating)
	rq.Equal(10, e.service.lastLimit)

	resp, err = e.client.Get(ctx, "/v1/organizations/other/feedback", staff, &list, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Empty(list.Items)
	rq.Zero(e.service.lastLimit)

	for _, limit := range []string{"abc", "500"} {
		var apiErr rest.Error

		resp, err = e.client.Get(ctx, "/v1/organizations/hosp-1/feedback?limit="+limit, staff, nil, &apiErr)
		rq.NoError(err)
		rq.Equal(http.StatusBadRequest, resp.StatusCode)
		rq.Equal(rest.ErrorCode(errcodes.InvalidPaging), apiErr.Code)
	}
}

func TestListOrganizationFeedbackRequiresStaffToken(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		authorization string
	}{
		{name: "no header"},
		{name: "wrong token", authorization: "Bearer guess"},
		{name: "wrong scheme", authorization: "Basic " + staffToken},
		{name: "empty bearer", authorization: "Bearer "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rq := require.New(t)
			e := newEnv(t)

			headers := http.Header{}
			if tc.authorization != "" {
				headers.Set("Authorization", tc.authorization)
			}

			var apiErr rest.Error

			resp, err := e.client.Get(context.Background(), "/v1/organizations/hosp-1/feedback", headers, nil, &apiErr)
			rq.NoError(err)
			rq.Equal(http.StatusUnauthorized, resp.StatusCode)
			rq.Equal(rest.ErrorCode(errcodes.Unauthorized), apiErr.Code)
			rq.Zero(e.service.lastLimit)
		})
	}
}
