package platform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortFromNameIsStable(t *testing.T) {
	port := portFromName("BurnWatch")
	assert.Equal(t, port, portFromName("BurnWatch"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestSecondInstanceIsRejectedAndCanSignal(t *testing.T) {
	name := "burnwatch-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer guard.Release()

	_, err = AcquireSingleInstance(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	ctx, cancel := context.WithCancel(context.Background())
	shown := make(chan struct{}, 1)
	served := make(chan error, 1)
	go func() {
		served <- guard.Serve(ctx, func() { shown <- struct{}{} })
	}()

	require.NoError(t, SignalRunning(name))
	select {
	case <-shown:
	case <-time.After(2 * time.Second):
		t.Fatal("show request not delivered")
	}

	cancel()
	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	assert.NoError(t, guard.Release())
}

func TestConfigDirEndsWithAppName(t *testing.T) {
	dir, err := ConfigDir("BurnWatch")
	require.NoError(t, err)
	assert.Contains(t, dir, "BurnWatch")
}
