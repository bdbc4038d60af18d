package saga_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/pkg/saga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaga_CompensateReverseOrder(t *testing.T) {
	var order []string
	s := saga.New()
	for _, name := range []string{"a", "b", "c"} {
		s.Record(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, s.Compensate(context.Background()))
	assert.Equal(t, []string{"c", "b", "a"}, order)

	// повторный вызов ничего не делает
	require.NoError(t, s.Compensate(context.Background()))
	assert.Len(t, order, 3)
}

func TestSaga_CompensateContinuesAfterFailure(t *testing.T) {
	errUndo := errors.New("undo failed")
	var ran []string

	s := saga.New()
	s.Record("first", func(context.Context) error {
		ran = append(ran, "first")
		return nil
	})
	s.Record("second", func(context.Context) error {
		ran = append(ran, "second")
		return errUndo
	})

	err := s.Compensate(context.Background())
	assert.ErrorIs(t, err, errUndo)
	assert.ErrorContains(t, err, "second")
	assert.Equal(t, []string{"second", "first"}, ran)
}

func TestSaga_Forget(t *testing.T) {
	called := false
	s := saga.New()
	s.Record("step", func(context.Context) error {
		called = true
		return nil
	})

	s.Forget()
	require.NoError(t, s.Compensate(context.Background()))
	assert.False(t, called)
	assert.Zero(t, s.Len())
}
