package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/tagabukid-property/pkg/lazy"
)

func TestLoader_CallsProviderOnce(t *testing.T) {
	calls := 0
	loader := lazy.New(func() (string, error) {
		calls++
		return "value", nil
	})

	assert.Equal(t, "value", loader.MustLoad())
	assert.Equal(t, "value", loader.MustLoad())
	assert.Equal(t, 1, calls)
}

func TestLoader_IfLoaded_SkipsNotLoadedValue(t *testing.T) {
	loader := lazy.New(func() (int, error) { return 42, nil })

	called := false
	loader.IfLoaded(func(int) { called = true })
	assert.False(t, called)

	loader.MustLoad()
	loader.IfLoaded(func(v int) {
		called = true
		assert.Equal(t, 42, v)
	})
	assert.True(t, called)
}

func TestLoader_RemembersError(t *testing.T) {
	calls := 0
	errExpected := errors.New("unexpected")
	loader := lazy.New(func() (int, error) {
		calls++
		return 0, errExpected
	})

	_, err := loader.Load()
	require.ErrorIs(t, err, errExpected)
	_, err = loader.Load()
	require.ErrorIs(t, err, errExpected)
	assert.Equal(t, 1, calls)
	assert.Panics(t, func() { loader.MustLoad() })
}

func TestValue_IsLoaded(t *testing.T) {
	loader := lazy.Value("ready")

	called := false
	loader.IfLoaded(func(v string) {
		called = true
		assert.Equal(t, "ready", v)
	})
	assert.True(t, called)
}
