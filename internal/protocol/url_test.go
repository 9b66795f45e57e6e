package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Parts
		wantErr bool
	}{
		{
			name: "host and path",
			in:   "hermes://assets/Game/Maps/Arena",
			want: Parts{Scheme: "hermes", Host: "assets", FullPath: "/assets/Game/Maps/Arena"},
		},
		{
			name: "query is preserved",
			in:   "hermes://actions/build?config=Shipping&platform=Win64",
			want: Parts{Scheme: "hermes", Host: "actions", FullPath: "/actions/build?config=Shipping&platform=Win64"},
		},
		{
			name: "host only",
			in:   "hermes://editor",
			want: Parts{Scheme: "hermes", Host: "editor", FullPath: "/editor"},
		},
		{
			name: "scheme is lowercased",
			in:   "HERMES://editor",
			want: Parts{Scheme: "hermes", Host: "editor", FullPath: "/editor"},
		},
		{name: "no host", in: "hermes:///Game/Maps/Arena", wantErr: true},
		{name: "opaque url", in: "mailto:someone@example.com", wantErr: true},
		{name: "invalid scheme char", in: "her_mes://editor", wantErr: true},
		{name: "garbage", in: "://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
