package obslog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfoLevel(t *testing.T) {
	l, err := New(Config{Service: "test"})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New(Config{Service: "test", Level: "not-a-level"})
	assert.Error(t, err)
}

func TestSetLevelRejectsInvalidLevel(t *testing.T) {
	l, err := NewCLI("test")
	require.NoError(t, err)
	assert.Error(t, l.SetLevel("bogus"))
	assert.NoError(t, l.SetLevel("debug"))
}

func TestNewCorrelationIDIsUnique(t *testing.T) {
	a := NewCorrelationID()
	b := NewCorrelationID()
	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}

func TestWithComponentAndCorrelationIDDoNotPanic(t *testing.T) {
	l, err := NewCLI("test")
	require.NoError(t, err)
	scoped := l.WithComponent("finder").WithCorrelationID(NewCorrelationID())
	scoped.Info("constructed finder")
}
