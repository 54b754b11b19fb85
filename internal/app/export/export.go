package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"audio2text/internal/app/model"
)

// ToExcel writes the transcription history as an xlsx workbook.
func ToExcel(records []model.TranscriptionRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Run ID"
	headerRow.AddCell().Value = "Engine"
	headerRow.AddCell().Value = "Model"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Output File"
	headerRow.AddCell().Value = "Created At"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Error Kind"
	headerRow.AddCell().Value = "Error Message"

	for _, rec := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(rec.ID)
		row.AddCell().Value = rec.RunID
		row.AddCell().Value = rec.Engine
		row.AddCell().Value = rec.Model
		row.AddCell().Value = rec.FileName
		row.AddCell().Value = rec.OutputFile
		row.AddCell().Value = rec.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = rec.Transcription
		row.AddCell().Value = rec.ErrorKind
		row.AddCell().Value = rec.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
