// Command binkplay decodes a Bink (.bik) file to raw planar Y/U/V/A frames
// and interleaved float32 PCM, one output file per plane and per audio
// track, for inspection or piping into an external player.
//
// Usage:
//
//	binkplay [flags] <input.bik>
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	bink "github.com/binkstream/bink"
)

var planeSuffix = [4]string{"y", "u", "v", "a"}

func main() {
	frameStart := pflag.Int("frame-start", 0, "first frame to decode (inclusive)")
	frameEnd := pflag.Int("frame-end", -1, "last frame to decode, exclusive (-1 = end of stream)")
	audioTrack := pflag.IntP("audio-track", "a", -1, "audio track index to dump (-1 = all tracks)")
	outDir := pflag.StringP("out", "o", ".", "output directory for dumped planes and PCM")
	verbose := pflag.BoolP("verbose", "v", false, "log per-frame decode diagnostics")
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: binkplay [flags] <input.bik>")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(pflag.Arg(0), *frameStart, *frameEnd, *audioTrack, *outDir, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(path string, start, end, audioTrack int, outDir string, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := bink.Open(f)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	total := dec.FrameCount()
	if end < 0 || end > total {
		end = total
	}
	logger.Info("opened stream", "path", path, "frames", total, "decoding", end-start)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	planeFiles := [4]*os.File{}
	defer closeAll(planeFiles[:])

	audioFiles := map[int]*os.File{}
	defer func() {
		for _, f := range audioFiles {
			f.Close()
		}
	}()

	written := 0
	for i := 0; i < end; i++ {
		frame, err := dec.NextFrame()
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		if i < start {
			continue
		}
		logger.Debug("decoded frame", "index", i)

		for p, plane := range frame.Planes {
			if plane == nil {
				continue
			}
			w, err := planeWriter(&planeFiles[p], outDir, base, p)
			if err != nil {
				return err
			}
			if _, err := w.Write(plane.Pixels); err != nil {
				return fmt.Errorf("writing plane %s: %w", planeSuffix[p], err)
			}
		}

		for t, track := range frame.Audio {
			if audioTrack >= 0 && t != audioTrack {
				continue
			}
			if len(track.Samples) == 0 {
				continue
			}
			w, err := trackWriter(audioFiles, outDir, base, t)
			if err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, track.Samples); err != nil {
				return fmt.Errorf("writing audio track %d: %w", t, err)
			}
		}
		written++
	}

	logger.Info("decode complete", "frames_written", written)
	return nil
}

// planeWriter lazily opens the output file for plane index p on first use.
func planeWriter(slot **os.File, outDir, base string, p int) (*os.File, error) {
	if *slot != nil {
		return *slot, nil
	}
	path := filepath.Join(outDir, fmt.Sprintf("%s.%s", base, planeSuffix[p]))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	*slot = f
	return f, nil
}

// trackWriter lazily opens the output file for audio track t on first use.
func trackWriter(files map[int]*os.File, outDir, base string, t int) (*os.File, error) {
	if f, ok := files[t]; ok {
		return f, nil
	}
	path := filepath.Join(outDir, fmt.Sprintf("%s.track%d.pcm", base, t))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	files[t] = f
	return f, nil
}

func closeAll(files []*os.File) {
	for _, f := range files {
		if f != nil {
			f.Close()
		}
	}
}
