package dispatcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher"
	"github.com/dshills/motion/internal/dispatcher/execctx"
	"github.com/dshills/motion/internal/dispatcher/handler"
)

func TestRegistry(t *testing.T) {
	r := dispatcher.NewRegistry()
	assert.Zero(t, r.Count())
	assert.Len(t, r.Missing(), len(command.Kinds))

	h := handler.Func(func(*execctx.ExecutionContext, command.Request) handler.Result {
		return handler.NoOp(nil)
	})
	require.NoError(t, r.Register(command.KindSelect, h))
	require.NoError(t, r.Register(command.KindCopy, h))

	assert.True(t, r.Has(command.KindCopy))
	assert.False(t, r.Has(command.KindMove))
	assert.Nil(t, r.Get(command.KindMove))
	assert.Equal(t, []command.Kind{command.KindCopy, command.KindSelect}, r.List())
	assert.NotContains(t, r.Missing(), command.KindSelect)
}

func TestRegistryRejectsUnknownKind(t *testing.T) {
	r := dispatcher.NewRegistry()

	err := r.Register("undo", handler.Func(nil))

	assert.ErrorIs(t, err, command.ErrUnknownCommand)
	assert.Zero(t, r.Count())
}
