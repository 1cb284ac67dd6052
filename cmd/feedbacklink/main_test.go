package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"feedback_widget/pkg/logx"
)

func TestRootCmdPrintsLink(t *testing.T) {
	rq := require.New(t)

	t.Setenv("PG_DSN", "postgres://localhost/feedback")
	t.Setenv("HTTP_PUBLIC_URL", "https://feedback.example.com/")

	var out bytes.Buffer

	cmd := newRootCmd(logx.NewLogger(io.Discard, "error", true))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"hosp 1", "ChIJ/1", "--no-db"})

	rq.NoError(cmd.Execute())
	rq.Equal("https://feedback.example.com/feedback?hospitalId=hosp+1&placeId=ChIJ%2F1\n", out.String())
}

func TestRootCmdRejectsBadArgs(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "No args", args: []string{}},
		{name: "One arg", args: []string{"hosp-1"}},
		{name: "Blank organization", args: []string{" ", "place-1", "--no-db"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			t.Setenv("PG_DSN", "postgres://localhost/feedback")

			cmd := newRootCmd(logx.NewLogger(io.Discard, "error", true))
			cmd.SetOut(io.Discard)
			cmd.SetArgs(tc.args)

			rq.Error(cmd.Execute())
		})
	}
}
