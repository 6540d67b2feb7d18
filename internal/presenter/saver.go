package presenter

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

const (
	// CSVHeader is the single column name of exported sample sets.
	CSVHeader = "TVL"
	// CSVFilename is the default export file name.
	CSVFilename = "Mock_TVL_Distribution.csv"
)

// WriteCSV writes values as a single-column table with header TVL.
func WriteCSV(w io.Writer, values []float64) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{CSVHeader}); err != nil {
		return err
	}
	record := make([]string, 1)
	for _, v := range values {
		record[0] = strconv.FormatFloat(v, 'f', -1, 64)
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func SaveCSV(filename string, values []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, values); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
