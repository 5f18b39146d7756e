// fenboard-view - a position viewer built with Ebitengine
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hailam/fenboard/internal/board"
	"github.com/hailam/fenboard/internal/render"
	"github.com/hailam/fenboard/internal/storage"
	"github.com/hailam/fenboard/internal/ui"
	"github.com/rs/zerolog"
)

var (
	stored  = flag.Bool("stored", false, "view every stored position")
	dataDir = flag.String("data-dir", "", "position database directory (default: $"+storage.DataDirEnv+"/db)")
	flip    = flag.Bool("flip", false, "view from Black's side")
)

func main() {
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	entries, err := collect(flag.Args(), *stored, *dataDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load positions")
	}
	if len(entries) == 0 {
		entries = []ui.Entry{{Name: "start", Position: board.StartPosition()}}
	}

	opts := ui.Options{
		Render: render.DefaultOptions(),
		Title:  "fenboard",
		Logger: logger,
	}
	opts.Render.Flip = *flip
	if err := ui.Run(entries, opts); err != nil {
		logger.Fatal().Err(err).Msg("viewer failed")
	}
}

// collect builds the viewer entries: each argument is a full FEN record,
// followed by the stored positions when requested.
func collect(fens []string, withStored bool, dir string, logger zerolog.Logger) ([]ui.Entry, error) {
	var entries []ui.Entry
	for i, fen := range fens {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ui.Entry{Name: fmt.Sprintf("#%d", i+1), Position: pos})
	}
	if !withStored {
		return entries, nil
	}

	store, err := storage.Open(storage.Options{Dir: dir, Logger: logger})
	if err != nil {
		return nil, err
	}
	defer store.Close()

	names, err := store.ListPositions()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		pos, err := store.LoadPosition(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ui.Entry{Name: name, Position: pos})
	}
	return entries, nil
}
