package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	size  int
	label string
}

func TestApply(t *testing.T) {
	t.Run("Applies options in order", func(t *testing.T) {
		c := &config{}
		err := Apply(c,
			NoError(func(c *config) { c.size = 10 }),
			NoError(func(c *config) { c.label = "tree" }),
			NoError(func(c *config) { c.size = 20 }),
		)

		require.NoError(t, err)
		require.Equal(t, 20, c.size)
		require.Equal(t, "tree", c.label)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		boom := errors.New("boom")
		c := &config{}
		err := Apply(c,
			NoError(func(c *config) { c.size = 1 }),
			New(func(*config) error { return boom }),
			NoError(func(c *config) { c.size = 2 }),
		)

		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, c.size, "options after the failing one must not run")
	})

	t.Run("New validates", func(t *testing.T) {
		c := &config{}
		opt := New(func(c *config) error {
			if c.size != 0 {
				return errors.New("already set")
			}
			c.size = 5
			return nil
		})

		require.NoError(t, Apply(c, opt))
		require.Error(t, Apply(c, opt))
	})
}
