package tracklist

import (
	"bufio"
	"io"
	"strings"
)

// decodeTSV reads one track per line: name, key and tempo separated by tabs.
// Blank lines are ignored.
func (d *Decoder) decodeTSV(r io.Reader, source string) (*Result, error) {
	res := &Result{}
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.SplitN(text, "\t", 3)
		for len(fields) < 3 {
			fields = append(fields, "")
		}
		rec := record{
			source: source,
			line:   line,
			name:   strings.TrimSpace(fields[0]),
			key:    fields[1],
			bpm:    fields[2],
		}
		if d.commented(rec.name) {
			continue
		}
		if err := d.add(res, rec); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// decodeLines reads tracks as groups of three lines: name, key, tempo.
// A trailing incomplete group is an invalid record.
func (d *Decoder) decodeLines(r io.Reader, source string) (*Result, error) {
	res := &Result{}
	sc := bufio.NewScanner(r)

	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	for {
		name, ok := next()
		if !ok {
			break
		}
		rec := record{source: source, line: line, name: strings.TrimSpace(name)}
		rec.key, _ = next()
		rec.bpm, _ = next()

		if d.commented(rec.name) {
			continue
		}
		if err := d.add(res, rec); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
