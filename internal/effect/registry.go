package effect

import (
	"fmt"
	"strings"
	"time"
)

// Kind names an effect.
type Kind string

const (
	KindFade    Kind = "fade"
	KindGlitch  Kind = "glitch"
	KindMatrix  Kind = "matrix"
	KindDestroy Kind = "destroy"
)

// Kinds lists every effect in a stable order.
var Kinds = []Kind{KindFade, KindGlitch, KindMatrix, KindDestroy}

// ParseKind resolves a case-insensitive effect name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown effect %q", s)
}

// Params are the tunables of any effect as given by a caller. Fields an
// effect does not use are ignored. Steps of zero and nil pointers select the
// effect's defaults; a zero delay or zero pause is a real value.
type Params struct {
	Steps       int
	Delay       *time.Duration
	PauseCycles *int
	// Repeat only applies to fade. Nil means repeat forever.
	Repeat *bool
}

// Tunables are Params with every default filled in.
type Tunables struct {
	Steps       int
	Delay       time.Duration
	PauseCycles int
	Repeat      bool
}

// Defaults returns the stock tunables for k.
func Defaults(k Kind) Tunables {
	switch k {
	case KindFade:
		return Tunables{Steps: 50, Delay: 50 * time.Millisecond, Repeat: true}
	case KindGlitch:
		return Tunables{Steps: 20, Delay: 100 * time.Millisecond, PauseCycles: 20}
	case KindMatrix:
		return Tunables{Delay: 100 * time.Millisecond}
	case KindDestroy:
		return Tunables{Delay: 100 * time.Millisecond, PauseCycles: 20}
	}
	return Tunables{}
}

// Resolve fills unset fields of p from Defaults(k).
func (p Params) Resolve(k Kind) Tunables {
	t := Defaults(k)
	if p.Steps != 0 {
		t.Steps = p.Steps
	}
	if p.Delay != nil {
		t.Delay = *p.Delay
	}
	if p.PauseCycles != nil {
		t.PauseCycles = *p.PauseCycles
	}
	if p.Repeat != nil {
		t.Repeat = *p.Repeat
	}
	return t
}

// New builds the effect named by k bound to target.
func New(k Kind, target Target, display Refresher, p Params, opts ...Option) (Updater, error) {
	t := p.Resolve(k)
	var (
		u   Updater
		err error
	)
	switch k {
	case KindFade:
		u, err = NewFade(target, display, t.Steps, t.Delay, t.Repeat, opts...)
	case KindGlitch:
		u, err = NewGlitch(target, display, t.Steps, t.Delay, t.PauseCycles, opts...)
	case KindMatrix:
		u, err = NewMatrix(target, display, t.Delay, opts...)
	case KindDestroy:
		u, err = NewDestroy(target, display, t.Delay, t.PauseCycles, opts...)
	default:
		return nil, fmt.Errorf("unknown effect %q", k)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", k, err)
	}
	return u, nil
}
