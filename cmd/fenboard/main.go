// Command fenboard decodes a FEN record and prints, renders or stores the
// resulting position.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hailam/fenboard/internal/board"
	"github.com/hailam/fenboard/internal/render"
	"github.com/hailam/fenboard/internal/storage"
	"github.com/rs/zerolog"
)

// config holds command-line settings. Every flag except -data-dir falls back
// to a FENBOARD_<NAME> environment variable; the storage package reads
// FENBOARD_DATA_DIR itself.
type config struct {
	fen      string
	format   string
	out      string
	flip     bool
	coords   bool
	size     int
	save     string
	load     string
	del      string
	list     bool
	find     bool
	dataDir  string
	logLevel string
	args     []string
}

var errUsage = errors.New("usage error")

func envString(name, def string) string {
	if v := os.Getenv("FENBOARD_" + name); v != "" {
		return v
	}
	return def
}

func envBool(name string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv("FENBOARD_" + name)); err == nil {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	if v, err := strconv.Atoi(os.Getenv("FENBOARD_" + name)); err == nil {
		return v
	}
	return def
}

func parseFlags(fs *flag.FlagSet, args []string) (*config, error) {
	c := &config{}
	fs.StringVar(&c.fen, "fen", envString("FEN", ""), "FEN record (default: arguments or stdin)")
	fs.StringVar(&c.format, "format", envString("FORMAT", "text"), "output format: text, fen, svg, png, json, squares")
	fs.StringVar(&c.out, "out", envString("OUT", ""), "write output to file instead of stdout")
	fs.BoolVar(&c.flip, "flip", envBool("FLIP", false), "draw diagrams from Black's side")
	fs.BoolVar(&c.coords, "coords", envBool("COORDS", true), "draw coordinates on diagrams")
	fs.IntVar(&c.size, "size", envInt("SIZE", 64), "diagram square size in pixels")
	fs.StringVar(&c.save, "save", envString("SAVE", ""), "store the position under `name`")
	fs.StringVar(&c.load, "load", envString("LOAD", ""), "use the position stored under `name`")
	fs.StringVar(&c.del, "delete", envString("DELETE", ""), "delete the position stored under `name`")
	fs.BoolVar(&c.list, "list", envBool("LIST", false), "list stored positions")
	fs.BoolVar(&c.find, "find", envBool("FIND", false), "list stored positions with the same hash")
	fs.StringVar(&c.dataDir, "data-dir", "", "position database directory (default: $"+storage.DataDirEnv+"/db)")
	fs.StringVar(&c.logLevel, "log-level", envString("LOG_LEVEL", "info"), "log level: trace, debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	c.args = fs.Args()

	switch c.format {
	case "text", "fen", "svg", "png", "json", "squares":
	default:
		return nil, fmt.Errorf("%w: unknown format %q", errUsage, c.format)
	}
	if c.fen != "" && len(c.args) > 0 {
		return nil, fmt.Errorf("%w: FEN given both as -fen and as arguments", errUsage)
	}
	if c.list && (c.del != "" || c.save != "" || c.load != "" || c.find) {
		return nil, fmt.Errorf("%w: -list cannot be combined with -delete, -save, -load or -find", errUsage)
	}
	if c.del != "" && (c.save != "" || c.load != "" || c.find) {
		return nil, fmt.Errorf("%w: -delete cannot be combined with -save, -load or -find", errUsage)
	}
	return c, nil
}

func (c *config) needsStore() bool {
	return c.save != "" || c.load != "" || c.del != "" || c.list || c.find
}

func (c *config) renderOptions() render.Options {
	o := render.DefaultOptions()
	o.Flip = c.flip
	o.Coordinates = c.coords
	o.SquareSize = c.size
	return o
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: %v", errUsage, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(lvl).With().Timestamp().Logger(), nil
}

func main() {
	logger, _ := newLogger(os.Stderr, "info")

	fs := flag.NewFlagSet("fenboard", flag.ExitOnError)
	cfg, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		logger.Error().Err(err).Msg("invalid arguments")
		os.Exit(2)
	}
	leveled, err := newLogger(os.Stderr, cfg.logLevel)
	if err != nil {
		logger.Error().Err(err).Msg("invalid arguments")
		os.Exit(2)
	}
	logger = leveled

	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		var pe *board.ParseError
		if errors.As(err, &pe) {
			logger.Error().Err(err).Str("field", pe.Field).Str("value", pe.Value).Msg("invalid FEN")
		} else {
			logger.Error().Err(err).Msg("fenboard failed")
		}
		os.Exit(1)
	}
}

// run executes one invocation. Positions come from -load, -fen, the
// arguments, or the first non-empty line of stdin, in that order.
func run(c *config, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) (err error) {
	var store *storage.Storage
	if c.needsStore() {
		store, err = storage.Open(storage.Options{Dir: c.dataDir, Logger: logger})
		if err != nil {
			return err
		}
		defer func() {
			if cerr := store.Close(); err == nil {
				err = cerr
			}
		}()
	}

	if c.list {
		names, err := store.ListPositions()
		if err != nil {
			return err
		}
		return printLines(stdout, names)
	}
	if c.del != "" {
		if err := store.DeletePosition(c.del); err != nil {
			return err
		}
		logger.Info().Str("name", c.del).Msg("position deleted")
		return nil
	}

	pos, err := inputPosition(c, store, stdin)
	if err != nil {
		return err
	}
	logger.Debug().Str("fen", pos.FEN()).Uint64("hash", pos.Hash()).Msg("position decoded")

	if c.save != "" {
		if err := store.SavePosition(c.save, pos); err != nil {
			return err
		}
		logger.Info().Str("name", c.save).Msg("position saved")
	}
	if c.find {
		names, err := store.FindByHash(pos.Hash())
		if err != nil {
			return err
		}
		return printLines(stdout, names)
	}

	w := stdout
	if c.out != "" {
		f, ferr := os.Create(c.out)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	return writeOutput(w, c, pos)
}

func inputPosition(c *config, store *storage.Storage, stdin io.Reader) (*board.Position, error) {
	if c.load != "" {
		return store.LoadPosition(c.load)
	}
	fen := c.fen
	if fen == "" && len(c.args) > 0 {
		fen = strings.Join(c.args, " ")
	}
	if fen == "" {
		line, err := readFEN(stdin)
		if err != nil {
			return nil, err
		}
		fen = line
	}
	return board.ParseFEN(fen)
}

// readFEN returns the first non-blank line of r.
func readFEN(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: no FEN given", errUsage)
}

func writeOutput(w io.Writer, c *config, pos *board.Position) error {
	switch c.format {
	case "fen":
		_, err := fmt.Fprintln(w, pos.FEN())
		return err
	case "svg":
		return render.SVG(w, pos, c.renderOptions())
	case "png":
		return render.PNG(w, pos, c.renderOptions())
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(pos))
	case "squares":
		return writeSquares(w, pos)
	default:
		return board.Display(w, pos)
	}
}

// report is the JSON description of a position.
type report struct {
	FEN            *board.Position           `json:"fen"`
	SideToMove     string                    `json:"side_to_move"`
	Castling       string                    `json:"castling"`
	EnPassant      string                    `json:"en_passant"`
	HalfMoveClock  int                       `json:"halfmove_clock"`
	FullMoveNumber int                       `json:"fullmove_number"`
	Hash           string                    `json:"hash"`
	Counts         map[string]map[string]int `json:"counts"`
	Squares        []render.SquareView       `json:"squares"`
}

func newReport(pos *board.Position) report {
	counts := pos.Counts()
	byColor := make(map[string]map[string]int, board.NumColors)
	for _, c := range board.ColorOrder {
		m := map[string]int{"total": counts[c][board.None]}
		for _, pt := range board.PieceTypes {
			m[strings.ToLower(pt.String())] = counts[c][pt]
		}
		byColor[strings.ToLower(c.String())] = m
	}
	return report{
		FEN:            pos,
		SideToMove:     strings.ToLower(pos.SideToMove.String()),
		Castling:       pos.CastlingRights.String(),
		EnPassant:      pos.EnPassant.String(),
		HalfMoveClock:  pos.HalfMoveClock,
		FullMoveNumber: pos.FullMoveNumber,
		Hash:           fmt.Sprintf("%016x", pos.Hash()),
		Counts:         byColor,
		Squares:        render.Squares(pos),
	}
}

// writeSquares prints one line per square: index, name, shade and asset.
func writeSquares(w io.Writer, pos *board.Position) error {
	bw := bufio.NewWriter(w)
	for _, v := range render.Squares(pos) {
		fmt.Fprintf(bw, "%2d %s %-5s %s\n", v.Index, v.Name, v.Color, v.Asset)
	}
	return bw.Flush()
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
