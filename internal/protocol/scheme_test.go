package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "simple", in: "hermes", want: "hermes"},
		{name: "uppercase is lowercased", in: "Hermes", want: "hermes"},
		{name: "digits and punctuation after first char", in: "ue4+asset-link.v2", want: "ue4+asset-link.v2"},
		{name: "surrounding whitespace trimmed", in: "  hermes \n", want: "hermes"},
		{name: "empty", in: "", wantErr: true},
		{name: "whitespace only", in: "   ", wantErr: true},
		{name: "leading digit", in: "4hermes", wantErr: true},
		{name: "leading plus", in: "+hermes", wantErr: true},
		{name: "embedded space", in: "her mes", wantErr: true},
		{name: "embedded slash", in: "her/mes", wantErr: true},
		{name: "non-ascii", in: "hermès", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheme(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
