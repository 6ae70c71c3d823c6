package tracklist

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RyanBlaney/sonido-mix/algorithms/tonal"
	"github.com/RyanBlaney/sonido-mix/logging"
	"github.com/RyanBlaney/sonido-mix/mix"
)

// Format names a track list encoding
type Format string

const (
	FormatTSV   Format = "tsv"   // name<TAB>key<TAB>bpm per line
	FormatLines Format = "lines" // name, key and bpm on three consecutive lines
	FormatYAML  Format = "yaml"  // list of {id, key, bpm}
	FormatTags  Format = "tags"  // directory of tagged audio files
)

// ParseFormat validates a format name. An empty name means "detect".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTSV, FormatLines, FormatYAML, FormatTags:
		return f, nil
	default:
		return "", fmt.Errorf("unknown track list format %q", s)
	}
}

// DecoderConfig holds decoder configuration
type DecoderConfig struct {
	Format        Format `json:"format"`         // empty to detect from the path
	SkipInvalid   bool   `json:"skip_invalid"`   // log and collect bad records instead of failing
	CommentPrefix string `json:"comment_prefix"` // names starting with this are ignored
}

// DefaultDecoderConfig returns default decoder configuration
func DefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		Format:        "",
		SkipInvalid:   false,
		CommentPrefix: "//",
	}
}

// Result is the outcome of decoding a track list
type Result struct {
	Tracks  []mix.Track
	Skipped []*RecordError
}

// Decoder reads track lists into mix tracks
type Decoder struct {
	config *DecoderConfig
	logger logging.Logger
}

// NewDecoder creates a new track list decoder
func NewDecoder(config *DecoderConfig) *Decoder {
	if config == nil {
		config = DefaultDecoderConfig()
	}
	return &Decoder{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component": "tracklist_decoder",
		}),
	}
}

// DetectFormat guesses the format of path from its extension. Directories
// and audio files are read by their tags.
func DetectFormat(path string) Format {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return FormatTags
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".tsv" || ext == ".tab":
		return FormatTSV
	case ext == ".yaml" || ext == ".yml":
		return FormatYAML
	case isAudioExt(ext):
		return FormatTags
	default:
		return FormatLines
	}
}

// DecodeFile reads the track list at path
func (d *Decoder) DecodeFile(path string) (*Result, error) {
	format := d.config.Format
	if format == "" {
		format = DetectFormat(path)
	}

	logger := d.logger.WithFields(logging.Fields{
		"function": "DecodeFile",
		"path":     path,
		"format":   string(format),
	})
	logger.Debug("Reading track list")

	var (
		res *Result
		err error
	)
	if format == FormatTags {
		res, err = d.decodeTags(path)
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			logger.Error(err, "Failed to open track list")
			return nil, err
		}
		defer f.Close()
		res, err = d.decode(f, path, format)
	}
	if err != nil {
		logger.Error(err, "Failed to decode track list")
		return nil, err
	}

	logger.Debug("Track list decoded", logging.Fields{
		"tracks":  len(res.Tracks),
		"skipped": len(res.Skipped),
	})
	return res, nil
}

// Decode reads a text track list from r. The tags format needs files and
// cannot be read from a stream.
func (d *Decoder) Decode(r io.Reader) (*Result, error) {
	format := d.config.Format
	if format == "" {
		format = FormatTSV
	}
	return d.decode(r, "<input>", format)
}

func (d *Decoder) decode(r io.Reader, source string, format Format) (*Result, error) {
	switch format {
	case FormatTSV:
		return d.decodeTSV(r, source)
	case FormatLines:
		return d.decodeLines(r, source)
	case FormatYAML:
		return d.decodeYAML(r, source)
	case FormatTags:
		return nil, fmt.Errorf("format %q needs a directory or file path", format)
	default:
		return nil, fmt.Errorf("unknown track list format %q", format)
	}
}

// commented reports whether a record name marks the record as disabled
func (d *Decoder) commented(name string) bool {
	return d.config.CommentPrefix != "" && strings.HasPrefix(name, d.config.CommentPrefix)
}

// add validates one record and appends it to res. The returned error is
// non-nil only when the decode must stop.
func (d *Decoder) add(res *Result, rec record) error {
	t, err := rec.track()
	if err == nil {
		res.Tracks = append(res.Tracks, t)
		return nil
	}

	return d.reject(res, rec, err)
}

// reject fails the decode with a RecordError, or records and logs it when
// invalid records are skipped
func (d *Decoder) reject(res *Result, rec record, err error) error {
	recErr := &RecordError{Source: rec.source, Line: rec.line, Name: rec.name, Err: err}
	if !d.config.SkipInvalid {
		return recErr
	}

	d.logger.Warn("Skipping invalid track", logging.Fields{
		"source": rec.source,
		"line":   rec.line,
		"name":   rec.name,
		"error":  err.Error(),
	})
	res.Skipped = append(res.Skipped, recErr)
	return nil
}

// record is one raw entry of a track list
type record struct {
	source string
	line   int
	name   string
	key    string
	bpm    string
}

func (r record) track() (mix.Track, error) {
	if r.name == "" {
		return mix.Track{}, fmt.Errorf("missing track name")
	}

	key, err := ParseKey(r.key)
	if err != nil {
		return mix.Track{}, err
	}

	bpm, err := strconv.ParseFloat(strings.TrimSpace(r.bpm), 64)
	if err != nil {
		return mix.Track{}, fmt.Errorf("invalid tempo %q", r.bpm)
	}

	t := mix.Track{ID: r.name, BPM: bpm, Key: key}
	if err := t.Validate(); err != nil {
		return mix.Track{}, err
	}
	return t, nil
}

// ParseKey resolves a key by name, symbol or enharmonic spelling, falling
// back to a wheel code such as "8B"
func ParseKey(s string) (tonal.Key, error) {
	s = strings.TrimSpace(s)
	key, err := tonal.ResolveKey(s)
	if err == nil {
		return key, nil
	}
	if k, cerr := tonal.ParseCamelot(s); cerr == nil {
		return k, nil
	}
	return tonal.Key{}, err
}
