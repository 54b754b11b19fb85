package transcribe

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"audio2text/internal/app"
	"audio2text/internal/app/api"
	"audio2text/internal/app/batch"
	"audio2text/internal/config"
	"audio2text/internal/logging"
)

var (
	folderPath    string
	outputDir     string
	model         string
	engine        string
	configFile    string
	recursive     bool
	skipProcessed bool
	noProgress    bool
)

func init() {
	Cmd.Flags().StringVar(&folderPath, "folder_path", "",
		"folder containing audio files to transcribe (mutually exclusive with the input file argument)")
	Cmd.Flags().StringVar(&outputDir, "output_dir", "",
		"directory to save the transcription files (default \"transcripts\")")
	Cmd.Flags().StringVarP(&model, "model", "m", "",
		"model identifier: whisper.cpp size (tiny/base/small/medium/large), OpenAI model, or Azure deployment name")
	Cmd.Flags().StringVarP(&engine, "engine", "e", "",
		"transcription engine: local, openai or azure (default \"local\")")
	Cmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultSettingsFile,
		"settings file with run defaults")
	Cmd.Flags().BoolVarP(&recursive, "recursive", "r", false,
		"recurse into subfolders of --folder_path")
	Cmd.Flags().BoolVar(&skipProcessed, "skip-processed", false,
		"skip files that already have a successful transcription in the history database")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"disable the progress bar")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe [input-file]",
	Short: "Transcribe one audio file or a folder of audio files to text",
	Long: `Transcribe one audio file or a folder of audio files to text.

- Pass a single audio file as the positional argument, or a folder with --folder_path
- One .txt transcript per input is written under --output_dir
- A failing file is reported and the batch moves on to the next one`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger := logging.MustNewLogger(verbose)
		defer logger.Sync()

		settings, err := config.LoadSettings(configFile)
		if err != nil {
			log.Fatalln(err)
		}
		applyFlagOverrides(settings)

		if !api.ValidEngine(settings.Engine) {
			log.Fatalf("unknown engine %q: choose local, openai or azure\n", settings.Engine)
		}

		root, err := resolveRoot(args)
		if err != nil {
			log.Fatalln(err)
		}

		driver, err := app.InitializeDriver(settings, logger)
		if err != nil {
			log.Fatalln(err)
		}
		defer driver.Close()

		engineModel := settings.Model
		if engineModel == "" {
			engineModel = api.Engine(settings.Engine).DefaultModel()
		}

		jobs, err := batch.Enumerate(root, batch.EnumerateOptions{
			Model:     engineModel,
			OutputDir: settings.OutputDir,
			Recursive: settings.Recursive,
		})
		if err != nil {
			log.Fatalln(err)
		}

		if len(jobs) == 0 {
			fmt.Printf("No supported audio files found in %s\n", root)
			return
		}
		fmt.Printf("Found %d audio file(s) to process\n", len(jobs))

		summary := driver.Run(jobs, batch.RunOptions{
			SkipProcessed: settings.SkipProcessed,
			Progress:      batch.ProgressConfig{Enabled: !noProgress},
		})

		printSummary(summary)
		if summary.HasFailures() {
			os.Exit(1)
		}
	},
}

// applyFlagOverrides lets explicitly set flags win over the settings
// file.
func applyFlagOverrides(settings *config.Settings) {
	if outputDir != "" {
		settings.OutputDir = outputDir
	}
	if model != "" {
		settings.Model = model
	}
	if engine != "" {
		settings.Engine = engine
	}
	if recursive {
		settings.Recursive = true
	}
	if skipProcessed {
		settings.SkipProcessed = true
	}
}

func resolveRoot(args []string) (string, error) {
	switch {
	case len(args) == 1 && folderPath != "":
		return "", fmt.Errorf("pass either an input file or --folder_path, not both")
	case len(args) == 1:
		return args[0], nil
	case folderPath != "":
		return folderPath, nil
	default:
		return "", fmt.Errorf("an input file argument or --folder_path is required")
	}
}

func printSummary(summary *batch.Summary) {
	fmt.Printf("\nProcessed %d file(s): %d succeeded, %d failed, %d skipped\n",
		summary.Total(), len(summary.Succeeded), len(summary.Failed), len(summary.Skipped))

	for _, failure := range summary.Failed {
		fmt.Printf("  FAILED  %s  [%s] %s\n", failure.Path, failure.Kind, failure.Message)
	}
}
