// FILE: builder_test.go
package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderChaining(t *testing.T) {
	b := NewBuilder().
		Level(LevelWarn).
		ModuleLevel("db", LevelTrace).
		ModuleLevel("db::pool", LevelDebug).
		ChannelSize(512).
		Backpressure(BackpressureDrop).
		Target(TargetStderr).
		Nonblock(false).
		Colors(false).
		WithUTCOffset(-300).
		ShowGoroutine(true).
		SanitizeControl(true).
		InternalErrorsToStderr(false)

	cfg := b.cfg
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, []ModuleLevel{
		{Prefix: "db", Level: LevelTrace},
		{Prefix: "db::pool", Level: LevelDebug},
	}, cfg.ModuleLevels)
	assert.Equal(t, int64(512), cfg.ChannelSize)
	assert.Equal(t, BackpressureDrop, cfg.Backpressure)
	assert.Equal(t, TargetStderr, cfg.Target)
	assert.False(t, cfg.Nonblock)
	assert.False(t, cfg.Colors)
	assert.Equal(t, TimestampsOffset, cfg.Timestamps)
	assert.Equal(t, int64(-300), cfg.UTCOffsetMinutes)
	assert.True(t, cfg.ShowGoroutine)
	assert.True(t, cfg.SanitizeControl)
	assert.False(t, cfg.InternalErrorsToStderr)
}

func TestBuilderLevelString(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		logger, err := NewBuilder().
			LevelString("warn").
			Nonblock(false).
			Build()
		require.NoError(t, err)
		defer func() { _ = logger.Shutdown(time.Second) }()

		assert.Equal(t, LevelWarn, logger.cfg.Level)
	})

	t.Run("InvalidDeferredToBuild", func(t *testing.T) {
		_, err := NewBuilder().LevelString("loud").Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid level string")
	})
}

func TestBuilderValidationAtBuild(t *testing.T) {
	_, err := NewBuilder().ChannelSize(0).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewBuilder().Backpressure("maybe").Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBuilderConfigIsolation(t *testing.T) {
	// The built logger must not observe builder mutations after Build
	b := NewBuilder().Level(LevelInfo).Nonblock(false)
	logger, err := b.Build()
	require.NoError(t, err)
	defer func() { _ = logger.Shutdown(time.Second) }()

	b.Level(LevelOff)
	assert.Equal(t, LevelInfo, logger.cfg.Level)
	assert.True(t, logger.Enabled(LevelInfo, "app"))
}
