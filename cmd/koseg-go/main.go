package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hsiuhsiu/koseg-go/internal/boundary"
	"github.com/hsiuhsiu/koseg-go/internal/native"
	"github.com/hsiuhsiu/koseg-go/pkg/koseg"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file (default: $"+koseg.ConfigEnv+" or built-in defaults)")
	viaABI := flag.Bool("abi", false, "segment through the C boundary instead of the Go API")
	flag.Parse()

	log.Printf("koseg-go version: %s", koseg.WrapperVersion())
	log.Printf("kagome engine: %s", koseg.EngineVersion())

	segment, err := segmenter(*configPath, *viaABI)
	if err != nil {
		if errors.Is(err, koseg.ErrCGONotEnabled) {
			fmt.Printf("C boundary unavailable: %v\n", err)
			return
		}
		log.Fatalf("unable to start segmenter: %v", err)
	}

	if flag.NArg() > 0 {
		for _, text := range flag.Args() {
			if err := run(os.Stdout, segment, text); err != nil {
				log.Printf("segment %q: %v", text, err)
			}
		}
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if err := run(os.Stdout, segment, sc.Text()); err != nil {
			log.Printf("segment line: %v", err)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}
}

type segmentFunc func(string) ([]koseg.Span, error)

func segmenter(configPath string, viaABI bool) (segmentFunc, error) {
	if viaABI {
		if !native.Enabled() {
			return nil, koseg.ErrCGONotEnabled
		}
		if configPath != "" {
			if err := os.Setenv(koseg.ConfigEnv, configPath); err != nil {
				return nil, err
			}
		}
		return abiSegment, nil
	}

	var (
		cfg koseg.Config
		err error
	)
	if configPath != "" {
		cfg, err = koseg.LoadConfig(configPath)
	} else {
		cfg, err = koseg.ConfigFromEnv()
	}
	if err != nil {
		return nil, err
	}
	seg, err := koseg.New(cfg)
	if err != nil {
		return nil, err
	}
	return seg.Segment, nil
}

// abiSegment performs the same allocate, read and free cycle a C caller does.
func abiSegment(text string) ([]koseg.Span, error) {
	if strings.IndexByte(text, 0) >= 0 {
		return nil, errors.New("input contains NUL")
	}
	cin := native.CString([]byte(text))
	defer native.FreeString(cin)

	var count uintptr
	p := boundary.Tokenize(cin, &count)
	if p == nil {
		if text == "" {
			return nil, nil
		}
		return nil, errors.New("tokenize returned no spans")
	}
	defer boundary.Free(p, count)
	return native.ReadSpans(p, count), nil
}

func run(w io.Writer, segment segmentFunc, text string) error {
	spans, err := segment(text)
	if err != nil {
		return err
	}
	for i, s := range koseg.Surfaces(text, spans) {
		fmt.Fprintf(w, "%d\t%d\t%s\n", spans[i].Start, spans[i].End, s)
	}
	return nil
}
