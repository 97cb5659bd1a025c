package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb"
	"github.com/spf13/pflag"

	"github.com/kennylevinsen/gophotograph/config"
	"github.com/kennylevinsen/gophotograph/photograph"
)

type CraftCommand struct {
	*pflag.FlagSet

	ConfigPath string
	Procedure  photograph.Procedure
	Trigger    string
	Suffix     string
	Output     string
	Stdout     bool
	Activate   bool
	Stamp      bool
	Progress   bool
	Verbose    bool
	LogJSON    bool
}

func NewCraftCommand() (cmd *CraftCommand) {
	cmd = &CraftCommand{
		FlagSet: pflag.NewFlagSet("photograph", pflag.ContinueOnError),
	}

	cmd.StringVarP(&cmd.ConfigPath, "config", "c", "", "YAML profile to load")
	cmd.VarP(&cmd.Procedure, "procedure", "p", fmt.Sprintf("Photograph procedure: end (%s), corner (%s) or closest (%s)",
		photograph.EndOfLayer.Title(), photograph.LayerCorner.Title(), photograph.LeastChange.Title()))
	cmd.StringVarP(&cmd.Trigger, "trigger", "t", "", "Trigger command (default M240)")
	cmd.StringVar(&cmd.Suffix, "suffix", "", "Suffix for output files (default _photograph)")
	cmd.StringVarP(&cmd.Output, "output", "o", "", "Location to dump processed data, single input only")
	cmd.BoolVar(&cmd.Stdout, "stdout", false, "Output to stdout")
	cmd.BoolVar(&cmd.Activate, "activate", true, "Activate photograph")
	cmd.BoolVar(&cmd.Stamp, "stamp", false, "Record the procedure in the program header")
	cmd.BoolVar(&cmd.Progress, "progress", false, "Show a progress bar")
	cmd.BoolVarP(&cmd.Verbose, "verbose", "v", false, "Log every photograph")
	cmd.BoolVar(&cmd.LogJSON, "log-json", false, "Log as JSON")

	cmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: photograph [flags] FILE...\n       photograph serve [flags]\n\n")
		cmd.PrintDefaults()
	}

	return
}

// Flags given on the command line override the loaded configuration.
func (cmd *CraftCommand) Apply(cfg *config.Config) {
	if cmd.Changed("procedure") {
		cfg.Procedure = cmd.Procedure.String()
	}
	if cmd.Changed("trigger") {
		cfg.Trigger = cmd.Trigger
	}
	if cmd.Changed("suffix") {
		cfg.Suffix = cmd.Suffix
	}
	if cmd.Changed("activate") {
		cfg.Activate = cmd.Activate
	}
	if cmd.Changed("stamp") {
		cfg.Stamp = cmd.Stamp
	}
	if cmd.Verbose {
		cfg.LogLevel = "debug"
	}
}

// OutputName returns the file name for the crafted version of path.
func OutputName(path, suffix string) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+suffix+ext)
}

func newLogger(level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func craftFile(path, dest string, stdout io.Writer, settings photograph.Settings, log *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}

	out, stats := photograph.CraftText(string(data), settings, log)
	log.Info("photographed",
		"file", path,
		"procedure", stats.Procedure.String(),
		"layers", stats.Layers,
		"photographs", stats.Photographs,
		"skipped", stats.Skipped,
	)

	if stdout != nil {
		_, err := io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(dest, []byte(out), 0644); err != nil {
		return fmt.Errorf("could not write to file: %w", err)
	}
	return nil
}

func run(args []string) int {
	cmd := NewCraftCommand()
	if err := cmd.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	files := cmd.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: No file provided\n")
		cmd.Usage()
		return 1
	}
	if cmd.Output != "" && len(files) > 1 {
		fmt.Fprintf(os.Stderr, "Error: --output requires a single input file\n")
		return 1
	}

	cfg, err := config.Load(cmd.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 3
	}
	cmd.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 3
	}
	level, _ := cfg.Level()
	log := newLogger(level, cmd.LogJSON)
	settings, _ := cfg.Settings()

	var stdout io.Writer
	if cmd.Stdout {
		stdout = os.Stdout
	}

	var bar *pb.ProgressBar
	if cmd.Progress {
		bar = pb.New(len(files))
		bar.Output = os.Stderr
		bar.Format("[=> ]")
		bar.Start()
	}

	status := 0
	for _, f := range files {
		dest := cmd.Output
		if dest == "" {
			dest = OutputName(f, cfg.Suffix)
		}
		if err := craftFile(f, dest, stdout, settings, log); err != nil {
			log.Error("photograph failed", "file", f, "error", err)
			status = 2
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return status
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		os.Exit(serve(os.Args[2:]))
	}
	os.Exit(run(os.Args[1:]))
}
