package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestA3FlowGuarded(t *testing.T) {
	answered := map[string]bool{}
	m := NewA3(func(step string) bool { return answered[step] })

	assert.Equal(t, StepWhat, m.Current())
	assert.ErrorIs(t, m.Next(), ErrBlocked)

	answered[StepWhat] = true
	require.NoError(t, m.Next())
	assert.Equal(t, StepWhere, m.Current())
}

func TestBackNavigation(t *testing.T) {
	m := NewQFD(nil)

	assert.ErrorIs(t, m.Back(), ErrAtStart)
	require.NoError(t, m.Next())
	require.NoError(t, m.Next())
	assert.Equal(t, StepCompetitors, m.Current())

	require.NoError(t, m.Back())
	assert.Equal(t, StepEditLists, m.Current())
}

func TestDoneAtEnd(t *testing.T) {
	m := NewVSM(nil)

	require.NoError(t, m.Next()) // form -> result
	assert.False(t, m.Done())
	require.NoError(t, m.Next()) // finish
	assert.True(t, m.Done())
	assert.ErrorIs(t, m.Next(), ErrAtEnd)

	// back from done reopens the last step
	require.NoError(t, m.Back())
	assert.False(t, m.Done())
	assert.Equal(t, StepResult, m.Current())
}

func TestBusySerializesActions(t *testing.T) {
	m := NewHoshin(nil)

	require.NoError(t, m.Begin())
	assert.ErrorIs(t, m.Begin(), ErrBusy)
	assert.ErrorIs(t, m.Next(), ErrBusy)
	assert.ErrorIs(t, m.Back(), ErrBusy)

	m.End()
	require.NoError(t, m.Next())
}

func TestReset(t *testing.T) {
	m := NewHoshin(nil)
	require.NoError(t, m.Next())
	require.NoError(t, m.Begin())

	m.Reset()
	assert.Equal(t, StepForm, m.Current())
	assert.False(t, m.Busy())
	require.NoError(t, m.Begin())
}
