package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/keydrill/internal/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.WARN, logger.ParseLevel("WARNING"))
	assert.Equal(t, logger.ERROR, logger.ParseLevel(" error "))
	assert.Equal(t, logger.INFO, logger.ParseLevel("nonsense"))
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN))

	log.Info("hidden")
	log.Warn("shown %d", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 1")
}

func TestLogger_PrefixAndSortedFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf)).
		WithPrefix("session").
		WithFields(map[string]any{"b": 2, "a": 1})

	log.Info("done")

	out := buf.String()
	assert.Contains(t, out, "[session]")
	assert.Contains(t, out, "done a=1 b=2")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf)).WithField("request_id", "r1")
	ctx := logger.NewContext(context.Background(), log)

	logger.FromContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), "request_id=r1")
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
