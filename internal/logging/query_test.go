// SteamLens - Game Platform Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamlens

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestQueryLogger_Failed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind      string
		wantLevel string
	}{
		{"not_found", `"level":"info"`},
		{"empty_result", `"level":"info"`},
		{"unexpected", `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			ql := NewQueryLoggerWithLogger(zerolog.New(&buf))
			ctx := ContextWithRequestID(context.Background(), "req-7")

			ql.Failed(ctx, "user_for_genre", tt.kind, errors.New("boom"), 3*time.Millisecond)

			output := buf.String()
			for _, want := range []string{
				tt.wantLevel,
				`"query":"user_for_genre"`,
				`"error_kind":"` + tt.kind + `"`,
				`"request_id":"req-7"`,
				`"component":"analytics"`,
				`"duration_ms":3`,
			} {
				if !strings.Contains(output, want) {
					t.Errorf("expected %s in output: %s", want, output)
				}
			}
		})
	}
}

func TestQueryLogger_Served(t *testing.T) {
	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	var buf bytes.Buffer
	ql := NewQueryLoggerWithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ql.Served(context.Background(), "sentiment_analysis", time.Millisecond)

	if !strings.Contains(buf.String(), `"query":"sentiment_analysis"`) {
		t.Errorf("expected query field, got: %s", buf.String())
	}
}
