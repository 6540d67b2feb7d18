package readsamples

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadFile reads a single-column sample file, see Read.
func ReadFile(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return Read(file)
}

// Read parses one value per line. Blank lines and lines starting with '#'
// are skipped, as is a non-numeric first line (the header). Lines with
// several fields, separated by commas or whitespace, contribute their first
// field.
func Read(r io.Reader) ([]float64, error) {
	var values []float64
	scanner := bufio.NewScanner(r)
	seenFirst := false
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		val, err := strconv.ParseFloat(strings.Trim(fields[0], `"`), 64)
		if err != nil {
			if !seenFirst {
				seenFirst = true
				continue
			}
			return nil, errors.Wrapf(err, "failed to parse value at line %d", line)
		}
		seenFirst = true
		values = append(values, val)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading file")
	}
	return values, nil
}
