// textanim-pi animates a scene on an SSD1306 OLED attached to a Raspberry
// Pi over I²C.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"

	"github.com/junsooki/textanim/internal/config"
	"github.com/junsooki/textanim/internal/display"
	"github.com/junsooki/textanim/internal/display/periph"
	applog "github.com/junsooki/textanim/internal/logging"
	"github.com/junsooki/textanim/internal/runner"
	"github.com/junsooki/textanim/internal/scene"
)

func ptr[T any](v T) *T { return &v }

// demoScene fits a 128x64 panel with the 7x13 face.
func demoScene(seed uint64) *config.Scene {
	return &config.Scene{
		Seed: seed,
		Labels: []config.LabelSpec{
			{Text: "Glitching!", X: 2, Y: 2, Effect: "glitch", DelaySeconds: ptr(0.1), PauseCycles: ptr(20)},
			{Text: "Matrix!", X: 2, Y: 18, Effect: "matrix", DelaySeconds: ptr(0.2)},
			{Text: "Destroying!", X: 2, Y: 34, Effect: "destroy", DelaySeconds: ptr(0.1), PauseCycles: ptr(20)},
		},
	}
}

func main() {
	busName := flag.String("bus", "", "I²C bus name (empty = first available)")
	scenePath := flag.String("scene", "", "Scene file (.toml, .yaml); default is a built-in demo")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	poll := flag.Duration("poll", 5*time.Millisecond, "Polling loop interval")
	logFile := flag.String("log-file", "", "Log file (default stderr)")
	logLevel := flag.String("log-level", "info", "Log level: off, error, warn, info, debug, trace")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	scn := demoScene(*seed)
	if *scenePath != "" {
		var err error
		if scn, err = config.LoadScene(*scenePath); err != nil {
			log.Fatalf("scene: %v", err)
		}
		if scn.Seed == 0 {
			scn.Seed = *seed
		}
	}

	loggers, closer, err := applog.Init(*logFile, *logLevel)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	if _, err := host.Init(); err != nil {
		log.Fatalf("host init: %v", err)
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatalf("open i2c: %v", err)
	}
	defer bus.Close()

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		log.Fatalf("ssd1306: %v", err)
	}
	surface := periph.New(dev)
	defer surface.Halt()

	log.Printf("textanim-pi starting")
	log.Printf("  Display: %s %v", dev, surface.Bounds().Size())
	log.Printf("  Labels:  %d", len(scn.Labels))
	log.Printf("  Seed:    %d", scn.Seed)

	scr := display.NewScreen(surface, display.Options{
		Foreground: scn.ForegroundColor(),
		Background: scn.BackgroundColor(),
		Logger:     loggers.NewLogger("display"),
	})
	bindings, err := scene.Build(scr, scn, scene.Options{Loggers: loggers})
	if err != nil {
		log.Fatalf("scene: %v", err)
	}
	r, err := runner.New(*poll, loggers.NewLogger("runner"), scene.Updaters(bindings)...)
	if err != nil {
		log.Fatalf("runner: %v", err)
	}
	if err := r.Start(); err != nil {
		log.Fatalf("runner: %v", err)
	}
	defer r.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
}
