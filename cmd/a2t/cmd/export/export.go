package export

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	appexport "audio2text/internal/app/export"
	"audio2text/internal/app/repository/sqlite"
	"audio2text/internal/config"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transcription history to excel",
	Long: `Export the transcription history to excel

- Dumps every recorded run outcome, successes and failures, to an xlsx workbook`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.LoadSettings(config.DefaultSettingsFile)
		if err != nil {
			log.Fatalln(err)
		}

		db, err := sqlite.Open(settings.HistoryDB)
		if err != nil {
			log.Fatalln(err)
		}
		defer db.Close()

		records, err := db.GetAll()
		if err != nil {
			log.Fatalln(err)
		}

		if err := appexport.ToExcel(records, outputFilePath); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
