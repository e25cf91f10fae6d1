// Package dataio saves and loads reduced diagnostics as plain text, in the
// two layouts downstream tooling expects: whitespace-delimited columns
// ("numpy", np.savetxt-style) and CSV with an integer header row ("pandas").
package dataio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/diogodcarvalho/osiris-utils/utils"
)

// Format selects the on-disk text layout.
type Format string

const (
	FormatNumpy  Format = "numpy"
	FormatPandas Format = "pandas"
)

// ParseFormat validates a format tag from a CLI flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatNumpy, FormatPandas:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: format must be %q or %q, got %q",
			utils.ErrInvalidArgument, FormatNumpy, FormatPandas, s)
	}
}

// Save writes a rank-1 or rank-2 array to path. Rank-1 arrays are written
// as a single column.
func Save(a utils.Array, path string, format Format) (err error) {
	var buf []byte
	if buf, err = Marshal(a, format); err != nil {
		return
	}
	return os.WriteFile(path, buf, 0644)
}

// Marshal renders the array in the given format without touching the disk.
func Marshal(a utils.Array, format Format) (buf []byte, err error) {
	var rows [][]float64
	if rows, err = toRows(a); err != nil {
		return
	}
	switch format {
	case FormatNumpy:
		return marshalNumpy(rows), nil
	case FormatPandas:
		return marshalCSV(rows)
	default:
		err = fmt.Errorf("%w: format must be %q or %q, got %q",
			utils.ErrInvalidArgument, FormatNumpy, FormatPandas, format)
		return
	}
}

func toRows(a utils.Array) (rows [][]float64, err error) {
	switch a.Rank() {
	case 1:
		data := a.Data()
		rows = make([][]float64, len(data))
		for i, v := range data {
			rows[i] = []float64{v}
		}
	case 2:
		nr, nc := a.Len(0), a.Len(1)
		data := a.Data()
		rows = make([][]float64, nr)
		for i := 0; i < nr; i++ {
			rows[i] = data[i*nc : (i+1)*nc]
		}
	default:
		err = &utils.ShapeError{Op: "Save", WantRank: 2, GotShape: a.Shape()}
	}
	return
}

func marshalNumpy(rows [][]float64) []byte {
	var b strings.Builder
	for _, row := range rows {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.18e", v)
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func marshalCSV(rows [][]float64) (buf []byte, err error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	header := make([]string, len(rows[0]))
	for j := range header {
		header[j] = strconv.Itoa(j)
	}
	if err = w.Write(header); err != nil {
		return
	}
	rec := make([]string, len(rows[0]))
	for _, row := range rows {
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err = w.Write(rec); err != nil {
			return
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return
	}
	buf = []byte(b.String())
	return
}

// Load reads an array written by Save. Single-column input comes back as a
// rank-1 Array, anything wider as rank-2.
func Load(path string, format Format) (a utils.Array, err error) {
	var rows [][]float64
	switch format {
	case FormatNumpy:
		rows, err = loadNumpy(path)
	case FormatPandas:
		rows, err = loadCSV(path)
	default:
		err = fmt.Errorf("%w: format must be %q or %q, got %q",
			utils.ErrInvalidArgument, FormatNumpy, FormatPandas, format)
	}
	if err != nil {
		return
	}
	if len(rows) == 0 {
		err = fmt.Errorf("%w: %s holds no data rows", utils.ErrInvalidArgument, path)
		return
	}
	if len(rows[0]) == 1 {
		col := make([]float64, len(rows))
		for i, row := range rows {
			if len(row) != 1 {
				err = fmt.Errorf("%w: %s row %d has %d columns, row 0 has 1",
					utils.ErrInvalidArgument, path, i, len(row))
				return
			}
			col[i] = row[0]
		}
		return utils.NewArray1D(col)
	}
	return utils.NewArray2D(rows)
}

func loadNumpy(path string) (rows [][]float64, err error) {
	var f *os.File
	if f, err = os.Open(path); err != nil {
		return
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, s := range fields {
			if row[j], err = strconv.ParseFloat(s, 64); err != nil {
				err = fmt.Errorf("%s row %d: %w", path, len(rows), err)
				return
			}
		}
		rows = append(rows, row)
	}
	err = sc.Err()
	return
}

func loadCSV(path string) (rows [][]float64, err error) {
	var f *os.File
	if f, err = os.Open(path); err != nil {
		return
	}
	defer f.Close()
	var records [][]string
	if records, err = csv.NewReader(bufio.NewReader(f)).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue // integer header row
		}
		row := make([]float64, len(rec))
		for j, s := range rec {
			if row[j], err = strconv.ParseFloat(s, 64); err != nil {
				err = fmt.Errorf("%s row %d: %w", path, i, err)
				return
			}
		}
		rows = append(rows, row)
	}
	return
}
