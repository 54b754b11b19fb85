package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio2text/cmd/a2t/cmd/export"
	"audio2text/cmd/a2t/cmd/transcribe"
	"audio2text/cmd/a2t/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "Batch convert audio files to text transcripts",
	Long: `Batch convert audio files to text transcripts.

- Point it at a single audio file or a folder of audio files
- Pick a transcription engine: local whisper.cpp, OpenAI, or Azure OpenAI
- One .txt transcript per input; failures never abort the batch
- Every outcome is recorded to sqlite for later export.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
