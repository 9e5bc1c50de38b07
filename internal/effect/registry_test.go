package effect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junsooki/textanim/internal/timer"
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"fade", "Glitch", " MATRIX ", "destroy"} {
		_, err := ParseKind(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseKind("sparkle")
	assert.Error(t, err)
}

func ptr[T any](v T) *T { return &v }

func TestParamsResolve(t *testing.T) {
	p := Params{Delay: ptr(250 * time.Millisecond)}.Resolve(KindGlitch)
	assert.Equal(t, 20, p.Steps)
	assert.Equal(t, 250*time.Millisecond, p.Delay)
	assert.Equal(t, 20, p.PauseCycles)

	assert.Equal(t, Tunables{Steps: 50, Delay: 50 * time.Millisecond, Repeat: true}, Params{}.Resolve(KindFade))
	assert.Equal(t, Tunables{Delay: 100 * time.Millisecond}, Defaults(KindMatrix))
}

func TestParamsResolveKeepsExplicitZero(t *testing.T) {
	p := Params{Delay: ptr(time.Duration(0)), PauseCycles: ptr(0)}.Resolve(KindDestroy)
	assert.Equal(t, time.Duration(0), p.Delay)
	assert.Equal(t, 0, p.PauseCycles)
}

func TestNewGlitchWithoutPause(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	lbl := newLabel("AB")
	u, err := New(KindGlitch, lbl, nil, Params{Steps: 1, Delay: ptr(10 * time.Millisecond), PauseCycles: ptr(0)},
		WithClock(clock), WithSource(NewSource(3)))
	require.NoError(t, err)
	g := u.(*Glitch)

	clock.Advance(10 * time.Millisecond)
	require.NoError(t, g.Update())
	assert.Equal(t, PhasePausing, g.Phase())

	clock.Advance(10 * time.Millisecond)
	require.NoError(t, g.Update())
	assert.Equal(t, "AB", lbl.Text(), "single restore tick")
	assert.Equal(t, PhaseGlitching, g.Phase(), "cycle restarts right away")
}

func TestNewBuildsEveryKind(t *testing.T) {
	for _, k := range Kinds {
		u, err := New(k, newLabel("text"), nil, Params{}, WithSource(NewSource(1)))
		require.NoError(t, err, k)
		require.NotNil(t, u, k)
	}

	u, err := New(KindFade, newLabel("x"), nil, Params{})
	require.NoError(t, err)
	assert.IsType(t, &Fade{}, u)

	once := false
	u, err = New(KindFade, newLabel("x"), nil, Params{Repeat: &once})
	require.NoError(t, err)
	assert.False(t, u.(*Fade).repeat)

	_, err = New(Kind("sparkle"), newLabel("x"), nil, Params{})
	assert.Error(t, err)

	_, err = New(KindMatrix, newLabel("x"), nil, Params{Delay: ptr(-time.Second)})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
