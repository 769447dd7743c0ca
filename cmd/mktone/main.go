// Command mktone renders the dial's tone cues to WAV files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"glassdial/shatter"
	"glassdial/tone"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func main() {
	var (
		outDir = flag.String("out", ".", "Output directory.")
		rate   = flag.Int("rate", int(tone.DefaultSampleRate), "Sample rate in Hz.")
		gain   = flag.Float64("gain", 0.8, "Cue gain in [0,1].")
		only   = flag.String("state", "", "Render only this state's cue (e.g. SILENT).")
		seq    = flag.Bool("sequence", false, "Also write all cues back to back into sequence.wav.")
		gap    = flag.Duration("gap", 250*time.Millisecond, "Silence between cues in the sequence.")
	)
	flag.Parse()

	if *rate <= 0 {
		fatalf("rate out of range: %d", *rate)
	}
	if *gain < 0 || *gain > 1 {
		fatalf("gain out of range: %v", *gain)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("mkdir: %v", err)
	}

	sr := beep.SampleRate(*rate)
	cues := orderedCues()
	if *only != "" {
		cues = filterCues(cues, *only)
		if len(cues) == 0 {
			fatalf("no cue for state %q", *only)
		}
	}

	for _, c := range cues {
		path := filepath.Join(*outDir, strings.ToLower(c.state.String())+".wav")
		st, err := tone.Cue(sr, c.tone.FreqHz, c.tone.DurationMs, *gain)
		if err != nil {
			fatalf("%v: %v", c.state, err)
		}
		if err := writeWAV(path, sr, st); err != nil {
			fatalf("write %s: %v", path, err)
		}
		fmt.Printf("%-10s %5d Hz %4d ms -> %s\n", c.state, c.tone.FreqHz, c.tone.DurationMs, path)
	}

	if *seq {
		path := filepath.Join(*outDir, "sequence.wav")
		st, err := sequence(sr, cues, *gain, *gap)
		if err != nil {
			fatalf("sequence: %v", err)
		}
		if err := writeWAV(path, sr, st); err != nil {
			fatalf("write %s: %v", path, err)
		}
		fmt.Printf("sequence -> %s\n", path)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type cue struct {
	state shatter.State
	tone  shatter.Tone
}

// orderedCues lists the cue table in lifecycle order.
func orderedCues() []cue {
	var out []cue
	for s, t := range shatter.ToneCues() {
		out = append(out, cue{state: s, tone: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].state < out[j].state })
	return out
}

func filterCues(cues []cue, name string) []cue {
	var out []cue
	for _, c := range cues {
		if strings.EqualFold(c.state.String(), name) {
			out = append(out, c)
		}
	}
	return out
}

func sequence(sr beep.SampleRate, cues []cue, gain float64, gap time.Duration) (beep.Streamer, error) {
	var parts []beep.Streamer
	for i, c := range cues {
		if i > 0 && gap > 0 {
			parts = append(parts, beep.Silence(sr.N(gap)))
		}
		st, err := tone.Cue(sr, c.tone.FreqHz, c.tone.DurationMs, gain)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", c.state, err)
		}
		parts = append(parts, st)
	}
	return beep.Seq(parts...), nil
}

func writeWAV(path string, sr beep.SampleRate, st beep.Streamer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	format := beep.Format{SampleRate: sr, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, st, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
