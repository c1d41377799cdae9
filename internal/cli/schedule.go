package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyleawayan/fountain-setup-scheduler/internal/config"
	"github.com/kyleawayan/fountain-setup-scheduler/internal/fountain"
	"github.com/kyleawayan/fountain-setup-scheduler/internal/log"
	"github.com/kyleawayan/fountain-setup-scheduler/internal/output"
	"github.com/spf13/cobra"
)

// Shared flags
var (
	flagOut         string
	flagScheduleOut string
	flagStdout      bool
	flagLogLevel    string
	flagLogFile     string
)

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to a rotated file")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	if flagLogFile != "" {
		m["logFile"] = flagLogFile
	}
	return m
}

func initLogging(cfg config.Config) {
	log.Init(log.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
}

// defaultOutputPath derives an output path next to the input by prepending
// prefix to the file name.
func defaultOutputPath(inputPath, prefix string) string {
	dir, name := filepath.Split(inputPath)
	return filepath.Join(dir, prefix+name)
}

// readInput reads the input document, mapping a missing file to the
// distinct input-error exit code.
func readInput(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: could not find input file %q\n", path)
			exitCode = ExitInputError
			return "", false
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return "", false
	}
	return string(data), true
}

func reportRunError(err error) {
	var sse *fountain.SuffixSpaceError
	if errors.As(err, &sse) {
		fmt.Fprintf(os.Stderr, "Error: %v (too many blocks share one scene and setup)\n", sse)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	exitCode = ExitRuntimeError
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule <file>",
	Short: "Produce the setup-grouped shooting schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		initLogging(cfg)

		text, ok := readInput(args[0])
		if !ok {
			return nil
		}

		sched, err := fountain.Schedule(text)
		if err != nil {
			reportRunError(err)
			return nil
		}

		outPath := flagOut
		if outPath == "" && !flagStdout {
			outPath = defaultOutputPath(args[0], cfg.SchedulePrefix)
		}
		if flagStdout {
			outPath = ""
		}
		if err := output.Write(sched, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		log.L().Debug("schedule written", "input", args[0], "output", outPath)
		if outPath != "" {
			fmt.Fprintf(os.Stdout, "Successfully reorganized %s -> %s\n", args[0], outPath)
		}
		return nil
	},
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Produce both the shooting schedule and the annotated screenplay",
	Long:  "Annotate scans the input once and writes two files: the setup-grouped shooting schedule and the chronological screenplay with setup headings and marker tokens injected.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		initLogging(cfg)

		text, ok := readInput(args[0])
		if !ok {
			return nil
		}

		res, err := fountain.Reorganize(text)
		if err != nil {
			reportRunError(err)
			return nil
		}

		schedPath := flagScheduleOut
		if schedPath == "" {
			schedPath = defaultOutputPath(args[0], cfg.SchedulePrefix)
		}
		annPath := flagOut
		if annPath == "" {
			annPath = defaultOutputPath(args[0], cfg.AnnotatedPrefix)
		}

		if err := output.Write(res.Schedule, schedPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing schedule: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if err := output.Write(res.Screenplay, annPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing annotated screenplay: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		log.L().Debug("combined outputs written", "input", args[0], "schedule", schedPath, "annotated", annPath)
		fmt.Fprintf(os.Stdout, "Successfully reorganized %s -> %s, %s\n", args[0], schedPath, annPath)
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file path (default: SHOTLIST_<name> next to input)")
	scheduleCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Print the schedule to stdout instead of a file")
	annotateCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Annotated screenplay path (default: ANNOTATED_<name> next to input)")
	annotateCmd.Flags().StringVar(&flagScheduleOut, "schedule-out", "", "Schedule path (default: SHOTLIST_<name> next to input)")

	addCommonFlags(scheduleCmd)
	addCommonFlags(annotateCmd)
}
