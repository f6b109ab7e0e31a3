package main

import (
	"flag"
	"log"
	"time"

	"lifelike/internal/app"
	"lifelike/internal/core"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	// Terminal-sized board unless the command line asks for another.
	_ = flag.CommandLine.Set("w", "60")
	_ = flag.CommandLine.Set("h", "30")
	flag.Parse()

	board, err := cfg.NewBoard(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	session := app.NewSession(board, cfg.PresetDir)
	in := &input{session: session}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	timer := core.NewFixedStep(board.Delay())
	frame := time.NewTicker(time.Second / time.Duration(max(cfg.TPS, 1)))
	defer frame.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || in.handle(ev) {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
		case <-frame.C:
			timer.SetDelay(board.Delay())
			if timer.ShouldStep() {
				// Errors are shown on the status line.
				_ = session.Tick()
			}
			drawBoard(screen, session)
		}
	}
}
