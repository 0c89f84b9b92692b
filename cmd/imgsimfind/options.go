package main

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"imgsimfind"
	"imgsimfind/internal/config"
)

// runFlags are the similarity-run knobs shared by scan, compare, groups,
// clean and serve.
type runFlags struct {
	level          int
	threshold      int
	recursive      bool
	fastSameFolder bool
	timeWindow     int
	exifWindow     int
	threads        int
	quiet          bool
}

// addRunFlags registers the shared run flags, defaulting --level and
// --recursive from the persisted config.AppConfig rather than hardcoded
// literals, so a `config set` persists across scan/compare/groups/clean.
func addRunFlags(cmd *cobra.Command, f *runFlags) {
	defaults := config.Default()
	if cfg, err := config.Load(); err == nil {
		defaults = cfg
	}

	cmd.Flags().IntVar(&f.level, "level", defaults.Level, "similarity level (1=strict, 2=default, 3=loose)")
	cmd.Flags().IntVar(&f.threshold, "threshold", 0, "explicit Hamming-distance threshold (overrides --level)")
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", defaults.Recursive, "descend into subdirectories")
	cmd.Flags().BoolVar(&f.fastSameFolder, "fast", false, "only compare images within the same folder")
	cmd.Flags().IntVar(&f.timeWindow, "name-window", 0, "seconds: drop pairs whose filename timestamps differ by more (0 = unset)")
	cmd.Flags().IntVar(&f.exifWindow, "exif-window", 0, "seconds: use EXIF-time-windowed candidate pruning (0 = disabled)")
	cmd.Flags().IntVar(&f.threads, "threads", 0, "worker thread count (0 = auto)")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "suppress the progress bar")
}

func (f runFlags) toOptions() imgsimfind.Options {
	opts := imgsimfind.Options{
		Level:              f.level,
		Recursive:          f.recursive,
		FastSameFolderOnly: f.fastSameFolder,
	}
	if f.threshold > 0 {
		t := f.threshold
		opts.Threshold = &t
	}
	if f.timeWindow > 0 {
		w := f.timeWindow
		opts.TimeWindowSeconds = &w
	}
	if f.exifWindow > 0 {
		w := f.exifWindow
		opts.ExifTimeWindowSeconds = &w
	}
	if f.threads > 0 {
		n := f.threads
		opts.NumThreads = &n
	}
	return opts
}

// attachProgressBar wires a terminal progress bar to opts.Progress, showing
// the hash phase then the compare phase each as their own bar.
func attachProgressBar(opts *imgsimfind.Options, quiet bool) {
	if quiet {
		return
	}

	var bar *progressbar.ProgressBar
	var currentPhase imgsimfind.ProgressPhase

	opts.Progress = func(ev imgsimfind.ProgressEvent) {
		if bar == nil || ev.Phase != currentPhase {
			currentPhase = ev.Phase
			label := "hashing"
			if ev.Phase == imgsimfind.PhaseCompare {
				label = "comparing"
			}
			bar = progressbar.Default(int64(ev.Total), label)
		}
		bar.Set(int(ev.Current))
	}
}
