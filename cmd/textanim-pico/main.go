//go:build tinygo

// textanim-pico runs the four effects on a Waveshare Pico-ResTouch-LCD-2.8
// (ST7789, 320x240 landscape).
package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/st7789"

	"github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/display/tiny"
	"github.com/junsooki/textanim/internal/effect"
	"github.com/junsooki/textanim/internal/rgb"
	"github.com/junsooki/textanim/internal/runner"
)

const (
	tftDC   = machine.GP8
	tftCS   = machine.GP9
	spiSCK  = machine.GP10
	spiSDO  = machine.GP11
	spiSDI  = machine.GP12
	tftRST  = machine.GP15
	tftLite = machine.GP13

	poll = 5 * time.Millisecond
)

func ptr[T any](v T) *T { return &v }

var demo = []struct {
	text   string
	y      int
	kind   effect.Kind
	params effect.Params
}{
	{"Fading Text!", 30, effect.KindFade, effect.Params{Steps: 50, Delay: ptr(50 * time.Millisecond)}},
	{"Glitching Text!", 80, effect.KindGlitch, effect.Params{Steps: 50, Delay: ptr(250 * time.Millisecond), PauseCycles: ptr(20)}},
	{"Matrix Effect!", 130, effect.KindMatrix, effect.Params{Delay: ptr(200 * time.Millisecond)}},
	{"Destroying Text!", 180, effect.KindDestroy, effect.Params{Delay: ptr(100 * time.Millisecond), PauseCycles: ptr(20)}},
}

func main() {
	machine.SPI1.Configure(machine.SPIConfig{
		Frequency: 62500000,
		SCK:       spiSCK,
		SDO:       spiSDO,
		SDI:       spiSDI,
		Mode:      0,
	})

	dev := st7789.New(machine.SPI1, tftRST, tftDC, tftCS, tftLite)
	dev.Configure(st7789.Config{
		Width:    240,
		Height:   320,
		Rotation: st7789.ROTATION_90,
	})

	scr := display.NewScreen(tiny.New(&dev), display.Options{Foreground: rgb.White})

	seed := uint64(time.Now().UnixNano())
	updaters := make([]effect.Updater, 0, len(demo))
	for i, d := range demo {
		l := scr.CreateText(d.text, 10, d.y)
		u, err := effect.New(d.kind, l, scr, d.params, effect.WithSource(effect.NewSource(seed+uint64(i))))
		if err != nil {
			println("effect:", err.Error())
			return
		}
		updaters = append(updaters, u)
	}

	r, err := runner.New(poll, nil, updaters...)
	if err != nil {
		println("runner:", err.Error())
		return
	}
	for {
		r.PollOnce()
		time.Sleep(poll)
	}
}
