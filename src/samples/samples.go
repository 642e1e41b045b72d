// Package samples reads recorded monitoring samples from disk and summarizes them.
//
// Two encodings are understood: JSON lines ({"ts":..,"cpu":..,"rss":..} per line) and CSV
// with ts,cpu,rss columns and an optional header. The extension selects the decoder; anything
// other than .csv is read as JSON lines.
package samples

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/landesfeind/procrec/src/logging"
	"github.com/landesfeind/procrec/src/types"
)

// MaxLineBytes caps a single JSONL record.
const MaxLineBytes = 1 << 20

// Load reads all samples from path.
func Load(path string) ([]types.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open samples")
	}
	defer f.Close()
	var out []types.Sample
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		out, err = ReadCSV(f)
	} else {
		out, err = ReadJSONL(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	logging.Debugf("loaded %d samples from %s", len(out), path)
	return out, nil
}

// ReadJSONL decodes one sample per non-blank line.
func ReadJSONL(r io.Reader) ([]types.Sample, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	var out []types.Sample
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var s types.Sample
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", lineNo+1)
	}
	return out, nil
}

// ReadCSV decodes ts,cpu,rss rows. A first row whose ts column is not a number is taken as
// the header.
func ReadCSV(r io.Reader) ([]types.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	var out []types.Sample
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", row)
		}
		ts, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			if row == 1 {
				continue
			}
			return nil, errors.Wrapf(err, "row %d ts", row)
		}
		cpu, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d cpu", row)
		}
		rss, err := strconv.ParseUint(rec[2], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d rss", row)
		}
		out = append(out, types.Sample{TS: ts, CPU: cpu, RSS: rss})
	}
}
