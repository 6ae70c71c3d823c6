// Package report renders assembled mixes for people and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/RyanBlaney/sonido-mix/algorithms/tonal"
	"github.com/RyanBlaney/sonido-mix/mix"
)

// WriteText renders m as an aligned table followed by a cost summary and the
// tracks that did not make it into the mix
func WriteText(w io.Writer, m *mix.Mix) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tTRACK\tKEY\tPLAY\tTUNE\tBPM IN\tBPM OUT\tMOVE\tCOST")
	for i, s := range m.Steps {
		move, cost := "-", "-"
		if i > 0 {
			move = s.Transition(m.Steps[i-1]).String()
			cost = fmt.Sprintf("%.3f", m.Costs[i-1])
		}
		fmt.Fprintf(tw, "%d\t%s\t%s (%s)\t%s (%s)\t%+d\t%.2f\t%.2f\t%s\t%s\n",
			i+1,
			s.Track.ID,
			s.Track.Key.Symbol, s.Track.Key.Camelot(),
			s.PlayKey.Symbol, s.PlayKey.Camelot(),
			s.Tuning,
			s.BPMBegin,
			s.BPMEnd,
			move,
			cost,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	st := m.Stats
	if _, err := fmt.Fprintf(w, "\ncost: min %.3f  mean %.3f  max %.3f  total %.3f\n",
		st.Min, st.Mean, st.Max, st.Sum); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "uses %d of %d input tracks\n", m.Len(), m.InputCount()); err != nil {
		return err
	}

	if len(m.Unused) > 0 {
		fmt.Fprintln(w, "\nunused:")
		for _, t := range m.Unused {
			if _, err := fmt.Fprintf(w, "  %s  %s  %.2f\n", t.ID, t.Key.Symbol, t.BPM); err != nil {
				return err
			}
		}
	}
	return nil
}

type jsonStep struct {
	Index      int      `json:"index"`
	ID         string   `json:"id"`
	Key        string   `json:"key"`
	Camelot    string   `json:"camelot"`
	PlayKey    string   `json:"play_key"`
	Tuning     int      `json:"tuning"`
	BPMBegin   float64  `json:"bpm_begin"`
	BPMEnd     float64  `json:"bpm_end"`
	Transition string   `json:"transition,omitempty"`
	CostIn     *float64 `json:"cost_in,omitempty"`
}

type jsonSummary struct {
	Min   float64 `json:"min"`
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
	Total float64 `json:"total"`
}

type jsonMix struct {
	Steps  []jsonStep  `json:"steps"`
	Cost   jsonSummary `json:"cost"`
	Used   int         `json:"used"`
	Input  int         `json:"input"`
	Unused []string    `json:"unused"`
}

// WriteJSON renders m as an indented JSON document
func WriteJSON(w io.Writer, m *mix.Mix) error {
	doc := jsonMix{
		Steps: make([]jsonStep, len(m.Steps)),
		Cost: jsonSummary{
			Min:   m.Stats.Min,
			Mean:  m.Stats.Mean,
			Max:   m.Stats.Max,
			Total: m.Stats.Sum,
		},
		Used:   m.Len(),
		Input:  m.InputCount(),
		Unused: make([]string, len(m.Unused)),
	}

	for i, s := range m.Steps {
		doc.Steps[i] = jsonStep{
			Index:    i + 1,
			ID:       s.Track.ID,
			Key:      s.Track.Key.Symbol,
			Camelot:  s.Track.Key.Camelot(),
			PlayKey:  s.PlayKey.Symbol,
			Tuning:   s.Tuning,
			BPMBegin: s.BPMBegin,
			BPMEnd:   s.BPMEnd,
		}
		if i > 0 {
			c := m.Costs[i-1]
			doc.Steps[i].CostIn = &c
			doc.Steps[i].Transition = s.Transition(m.Steps[i-1]).String()
		}
	}
	for i, t := range m.Unused {
		doc.Unused[i] = t.ID
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteKeyCounts writes how many tracks sit in each key, in wheel order.
// Keys with no tracks are left out.
func WriteKeyCounts(w io.Writer, tracks []mix.Track) error {
	counts := make(map[tonal.Key]int, tonal.NumKeys)
	for _, t := range tracks {
		if t.Key.IsZero() {
			continue
		}
		counts[tonal.KeyAt(t.Key.Position, t.Key.Mode)]++
	}

	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, k := range tonal.Keys() {
		if n := counts[k]; n > 0 {
			fmt.Fprintf(tw, "%s\t(%s):\t%d\n", k.Symbol, k.Camelot(), n)
		}
	}
	return tw.Flush()
}
