package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"dqx0.com/go/httpfs/httpfs"
	"dqx0.com/go/httpfs/internal/obs"
)

// verbosity counts -v occurrences; -vv adds two.
type verbosity struct {
	n    *int
	step int
}

func (v verbosity) String() string {
	if v.n == nil {
		return "0"
	}
	return strconv.Itoa(*v.n)
}

func (v verbosity) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*v.n += v.step
	}
	return nil
}

func (verbosity) IsBoolFlag() bool { return true }

func main() {
	var level int
	flag.Var(verbosity{&level, 1}, "v", "print connections; repeat (-v -v or -vv) to also print full requests and responses")
	flag.Var(verbosity{&level, 2}, "vv", "same as -v -v")
	dir := flag.String("d", ".", "directory to serve")
	port := flag.Int("p", 8080, "port to listen on")
	host := flag.String("host", "127.0.0.1", "address to bind")
	colorMode := flag.String("color", "auto", "colorize console output: auto, always or never")
	htmlListing := flag.Bool("html", false, "render directory listings as HTML")
	maxBody := flag.Int64("max-body", 0, "reject request bodies larger than this many bytes (0 = no limit)")
	flag.Parse()

	useColor := !color.NoColor
	switch *colorMode {
	case "always":
		useColor = true
	case "never":
		useColor = false
	case "auto":
	default:
		fmt.Fprintf(os.Stderr, "invalid -color %q\n", *colorMode)
		os.Exit(2)
	}
	color.NoColor = !useColor

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen, NoColor: !useColor}).
		With().Timestamp().Logger()
	logger := obs.ZeroLogger{L: zl, Min: obs.Info}

	s := &httpfs.Server{
		Addr:         net.JoinHostPort(*host, strconv.Itoa(*port)),
		Root:         *dir,
		MaxBodyBytes: *maxBody,
		Console:      &httpfs.Console{Out: os.Stdout, Verbosity: level, Color: useColor},
		Logger:       logger,
	}
	if *htmlListing {
		s.Listing = httpfs.ListingHTML
	}

	fmt.Printf("Starting Server: Serving directory %s on port %s\n",
		color.BlueString(*dir), color.GreenString(strconv.Itoa(*port)))
	if *maxBody > 0 {
		fmt.Printf("Request bodies limited to %s\n", humanize.Bytes(uint64(*maxBody)))
	}
	if err := s.ListenAndServe(); err != nil {
		logger.Logf(obs.Error, "%v", err)
		os.Exit(1)
	}
}
