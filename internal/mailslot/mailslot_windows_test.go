//go:build windows

package mailslot

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWithoutListener(t *testing.T) {
	err := Send(fmt.Sprintf("hermes-test-absent-%d", os.Getpid()), []byte("/editor"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotRunning))
}

func TestSendReceiveRoundtrip(t *testing.T) {
	scheme := fmt.Sprintf("hermes-test-%d", os.Getpid())

	srv, err := Listen(scheme)
	require.NoError(t, err)
	defer srv.Close()

	require.NoError(t, Send(scheme, []byte("/assets/Game/Maps/Arena?tab=1")))

	// Messages queue on the slot, so a sequential read is safe.
	got, err := srv.Read()
	require.NoError(t, err)
	assert.Equal(t, "/assets/Game/Maps/Arena?tab=1", string(got))
}
