package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/goccy/go-json"
	"github.com/sunfish-shogi/bufseekio"

	"github.com/aidanlind/mp3scan"
)

var errInvalidInput = fmt.Errorf("first argument must be a path or HTTP URL")

func openFile(location *url.URL) (io.ReadCloser, error) {
	f, err := os.Open(location.Path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func openHTTP(location *url.URL) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, location.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func resolveInput(arg string) (io.ReadCloser, error) {
	input, err := url.Parse(arg)
	if err != nil || input.Path == "" {
		return nil, errInvalidInput
	}

	switch input.Scheme {
	case "http", "https":
		return openHTTP(input)
	case "file", "":
		return openFile(input)
	default:
		return nil, errInvalidInput
	}
}

func main() {
	debugFlag := flag.Bool("debug", false, "enable debug diagnostics to stderr")
	format := flag.String("format", "", "output format: text or json (overrides config file)")
	configPath := flag.String("config", defaultConfigPath(), "path to a TOML config file")
	flag.Parse()

	cfg, err := loadFileConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *format != "" {
		cfg.OutputFormat = *format
	}

	rc, err := resolveInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer rc.Close()

	// Seekable inputs (local files) are read through a bufseekio buffer; HTTP
	// bodies are read directly. The MIME sniff below runs on the in-memory buf.
	var buffered io.Reader = rc
	if seeker, ok := rc.(io.ReadSeeker); ok {
		buffered = bufseekio.NewReadSeeker(seeker, 4096, 4)
	}

	buf, err := io.ReadAll(buffered)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Debug {
		mtype := mimetype.Detect(buf)
		if mtype.String() != "audio/mpeg" && mtype.String() != "audio/mp3" {
			fmt.Fprintf(os.Stderr, "warning: detected MIME type %s, expected audio/mpeg\n", mtype.String())
		}
	}

	obj, err := mp3scan.NewParser(buf, mp3scan.Config{Debug: cfg.Debug}).Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := emit(obj, cfg.OutputFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func emit(obj *mp3scan.AudioObject, format string) error {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(obj)
	}

	fmt.Printf("frames: %d\n", len(obj.Frames))
	fmt.Printf("tags:   %d\n", len(obj.Tags))
	if obj.Header != nil {
		fmt.Printf("id3:    %s, tag size %d\n", obj.Header.TagVersion, obj.Header.TagSize)
	}
	for _, f := range obj.Frames {
		fmt.Printf("  %s %s, %d kbit/s, %d Hz, %s, %d bytes\n", f.MPEGVersion, f.Layer, f.Bitrate, f.SamplingRate, f.Channel, f.Size)
	}
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mp3scanrc.toml")
}
