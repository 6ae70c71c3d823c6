package tracklist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
)

var audioExts = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".m4a":  true,
	".mp4":  true,
}

func isAudioExt(ext string) bool {
	return audioExts[strings.ToLower(ext)]
}

// Raw tag names holding tempo and key, lower-cased. Vorbis comments and MP4
// atoms use different names for the same thing.
var (
	rawBPMNames = []string{"bpm", "tbpm", "tmpo", "tempo"}
	rawKeyNames = []string{"initialkey", "key", "tkey"}
)

// decodeTags reads tempo and key tags from one audio file or from every audio
// file in a directory, in name order
func (d *Decoder) decodeTags(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	files := []string{path}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		files = files[:0]
		for _, e := range entries {
			if !e.IsDir() && isAudioExt(filepath.Ext(e.Name())) {
				files = append(files, filepath.Join(path, e.Name()))
			}
		}
	}

	res := &Result{}
	for _, file := range files {
		rec, err := readTagRecord(file)
		if err != nil {
			rec = record{source: file, name: trackName(file, "")}
			if err := d.reject(res, rec, err); err != nil {
				return nil, err
			}
			continue
		}
		if d.commented(rec.name) {
			continue
		}
		if err := d.add(res, rec); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func readTagRecord(file string) (record, error) {
	if strings.EqualFold(filepath.Ext(file), ".mp3") {
		return readID3(file)
	}
	return readGenericTags(file)
}

// readID3 reads the TBPM and TKEY frames of an MP3
func readID3(file string) (record, error) {
	t, err := id3v2.Open(file, id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"TIT2", "TBPM", "TKEY"},
	})
	if err != nil {
		return record{}, fmt.Errorf("read id3 tag: %w", err)
	}
	defer t.Close()

	return record{
		source: file,
		name:   trackName(file, t.Title()),
		key:    t.GetTextFrame("TKEY").Text,
		bpm:    t.GetTextFrame("TBPM").Text,
	}, nil
}

// readGenericTags reads FLAC, OGG and MP4 metadata
func readGenericTags(file string) (record, error) {
	f, err := os.Open(file)
	if err != nil {
		return record{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return record{}, fmt.Errorf("read tags: %w", err)
	}

	key, bpm := rawKeyAndBPM(m.Raw())
	return record{
		source: file,
		name:   trackName(file, m.Title()),
		key:    key,
		bpm:    bpm,
	}, nil
}

// rawKeyAndBPM looks up key and tempo values in a raw tag map by any of
// their known names, ignoring case
func rawKeyAndBPM(raw map[string]interface{}) (key, bpm string) {
	lower := make(map[string]string, len(raw))
	for k, v := range raw {
		lower[strings.ToLower(k)] = strings.TrimSpace(fmt.Sprint(v))
	}

	lookup := func(names []string) string {
		for _, n := range names {
			if v := lower[n]; v != "" {
				return v
			}
		}
		return ""
	}
	return lookup(rawKeyNames), lookup(rawBPMNames)
}

// trackName prefers the title tag and falls back to the file name
func trackName(file, title string) string {
	if title = strings.TrimSpace(title); title != "" {
		return title
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
