package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junsooki/textanim/internal/effect"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, BackendAuto, cfg.Backend)
	assert.Equal(t, "glitch", cfg.Effect)
	assert.Equal(t, "Glitching Text!", cfg.Text)
	assert.Equal(t, 10, cfg.X)
	assert.Equal(t, 30, cfg.Y)
	assert.Equal(t, 5*time.Millisecond, cfg.Poll)
	assert.NotZero(t, cfg.Seed, "seed filled from clock")
}

func TestParseFlagsSingleLabelScene(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-effect", "fade", "-text", "Fading Text!", "-color", "#ff8800",
		"-steps", "50", "-delay", "50ms", "-once", "-seed", "7",
	})
	require.NoError(t, err)

	s, err := cfg.LoadScene()
	require.NoError(t, err)
	require.Len(t, s.Labels, 1)
	assert.Equal(t, uint64(7), s.Seed)

	l := s.Labels[0]
	assert.Equal(t, "Fading Text!", l.Text)
	p := l.Params()
	assert.Equal(t, 50, p.Steps)
	require.NotNil(t, p.Delay)
	assert.Equal(t, 50*time.Millisecond, *p.Delay)
	assert.Nil(t, p.PauseCycles, "unset flag keeps the effect default")
	require.NotNil(t, p.Repeat)
	assert.False(t, *p.Repeat)
}

func TestParseFlagsRejectsBadValues(t *testing.T) {
	tests := [][]string{
		{"-backend", "hologram"},
		{"-effect", "sparkle"},
		{"-color", "purple"},
		{"-poll", "0s"},
		{"-width", "0"},
		{"-frames", "-1"},
		{"-steps", "-2"},
		{"-no-such-flag"},
	}
	for _, args := range tests {
		_, err := ParseFlags(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestResolveBackend(t *testing.T) {
	cfg := &Config{Backend: BackendWindow}
	assert.Equal(t, BackendWindow, cfg.ResolveBackend(os.Stdout))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	cfg.Backend = BackendAuto
	assert.Equal(t, BackendRecord, cfg.ResolveBackend(f), "regular file is not a terminal")
}

func TestFlagSceneDefaultsToEffectDefaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-effect", "destroy"})
	require.NoError(t, err)
	p := cfg.FlagScene().Labels[0].Params().Resolve(effect.KindDestroy)
	assert.Equal(t, effect.Defaults(effect.KindDestroy), p)
}

func TestFlagSceneKeepsExplicitZero(t *testing.T) {
	cfg, err := ParseFlags([]string{"-effect", "glitch", "-pause", "0", "-delay", "0s"})
	require.NoError(t, err)
	p := cfg.FlagScene().Labels[0].Params().Resolve(effect.KindGlitch)
	assert.Equal(t, 0, p.PauseCycles)
	assert.Equal(t, time.Duration(0), p.Delay)
	assert.Equal(t, 20, p.Steps)
}
