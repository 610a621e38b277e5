package main

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDecodeSessionKey(t *testing.T) {
	t.Parallel()

	encoded := base64.StdEncoding.EncodeToString([]byte("0123456789ABCDEF0123456789ABCDEF"))

	tests := []struct {
		name    string
		raw     string
		want    []byte
		wantLen int
		warning string
	}{
		{
			name: "base64 value is decoded",
			raw:  encoded,
			want: []byte("0123456789ABCDEF0123456789ABCDEF"),
		},
		{
			name:    "non base64 value is used as raw bytes",
			raw:     "not*base64!",
			want:    []byte("not*base64!"),
			warning: "session key is not valid base64; using raw bytes",
		},
		{
			name:    "empty value generates a key",
			raw:     "  ",
			wantLen: 32,
			warning: "session key not configured; generating an ephemeral key",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zapcore.WarnLevel)
			got := decodeSessionKey(zap.New(core), "SHOP_SESSION_HASH_KEY", tc.raw, 32)

			if tc.want != nil {
				require.Equal(t, tc.want, got)
			} else {
				require.Len(t, got, tc.wantLen)
			}

			entries := logs.All()
			if tc.warning == "" {
				require.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			require.Equal(t, tc.warning, entries[0].Message)
			require.Equal(t, "SHOP_SESSION_HASH_KEY", entries[0].ContextMap()["key"])
		})
	}
}
