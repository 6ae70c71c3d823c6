package tracklist

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// yamlDocument is either a bare list of tracks or a mapping with a tracks key
type yamlDocument struct {
	Tracks []yamlTrack `yaml:"tracks"`
}

type yamlTrack struct {
	ID   string  `yaml:"id"`
	Key  string  `yaml:"key"`
	BPM  float64 `yaml:"bpm"`
	line int
}

func (t *yamlTrack) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlTrack
	if err := node.Decode((*plain)(t)); err != nil {
		return err
	}
	t.line = node.Line
	return nil
}

func (d *Decoder) decodeYAML(r io.Reader, source string) (*Result, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &Result{}, nil
		}
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	var doc yamlDocument
	body := &root
	if body.Kind == yaml.DocumentNode && len(body.Content) == 1 {
		body = body.Content[0]
	}
	var err error
	if body.Kind == yaml.SequenceNode {
		err = body.Decode(&doc.Tracks)
	} else {
		err = body.Decode(&doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	res := &Result{}
	for _, t := range doc.Tracks {
		if d.commented(t.ID) {
			continue
		}
		rec := record{
			source: source,
			line:   t.line,
			name:   t.ID,
			key:    t.Key,
			bpm:    strconv.FormatFloat(t.BPM, 'f', -1, 64),
		}
		if err := d.add(res, rec); err != nil {
			return nil, err
		}
	}
	return res, nil
}
