package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	debugFlag   = flag.Bool("debug", false, "Enable debug logging to logs/")
	noSoundFlag = flag.Bool("no-sound", false, "Disable audio")
)

func main() {
	// Panic Recovery: the terminal must be restored before the stack
	// trace is printed, or it lands on a raw-mode screen
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Audio is optional; the game runs silent if the speaker fails
	var sounds *audio.SoundManager
	if !*noSoundFlag {
		sounds = audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	state := engine.NewGameState()
	grid := render.NewGrid()
	grid.Seed(state.Snapshot())

	sink := &hostSink{
		screen: screen,
		grid:   grid,
		state:  state,
		sounds: sounds,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	loop := engine.NewLoop(state, sink, rng)

	// The simulation runs in its own goroutine; recover here too so a
	// crashed loop still resets the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nGAME LOOP CRASHED: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		loop.Run()
	}()

	keys := input.DefaultKeyTable()
	mailbox := state.Mailbox()

	render.DrawGrid(screen, grid)

	// Event loop: keys feed the mailbox, interrupts posted by the sink
	// trigger repaints. After the game ends, any key quits.
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			select {
			case <-loop.Done():
				return
			default:
			}
			if tok := keys.Translate(ev); tok != engine.TokenNone {
				log.Printf("key %s -> token %d", ev.Name(), tok)
				mailbox.Send(tok)
			}

		case *tcell.EventInterrupt:
			render.DrawGrid(screen, grid)

		case *tcell.EventResize:
			screen.Sync()
			render.DrawGrid(screen, grid)

		case nil:
			// Screen finalized under us
			return
		}
	}
}
