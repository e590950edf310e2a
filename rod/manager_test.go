//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/carspec/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Acquire(t *testing.T) {
	t.Parallel()

	t.Run("recycles browser after max pages", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Acquire()
		second := manager.Acquire()
		third := manager.Acquire()

		require.NotNil(t, first)
		assert.Same(t, first, second)
		assert.NotSame(t, first, third)
	})

	t.Run("returns nil after close", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager()
		require.NoError(t, err)
		require.NoError(t, manager.Close())

		assert.Nil(t, manager.Acquire())
		assert.Zero(t, manager.LauncherPID())
	})
}
