// Package knowledge holds the question/answer reference base used to
// ground AI answers in the training material.
package knowledge

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

//go:embed base.jsonl
var embedded []byte

type Entry struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

type Base struct {
	entries []Entry
}

// Load parses the embedded reference base.
func Load() (*Base, error) {
	return parse(bytes.NewReader(embedded))
}

// LoadFile parses an external jsonl file, one Entry per line.
func LoadFile(path string) (*Base, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("knowledge: %w", err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) (*Base, error) {
	var b Base
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(text), &e); err != nil {
			return nil, fmt.Errorf("knowledge line %d: %w", line, err)
		}
		b.entries = append(b.entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Base) Len() int {
	return len(b.entries)
}

// Relevant returns up to n entries ranked by keyword overlap with the
// question. Entries with no overlap are skipped.
func (b *Base) Relevant(question string, n int) []Entry {
	type scored struct {
		e     Entry
		score int
	}
	words := keywords(question)

	var ranked []scored
	for _, e := range b.entries {
		s := 0
		text := strings.ToLower(e.Prompt + " " + e.Completion)
		for w := range words {
			if strings.Contains(text, w) {
				s++
			}
		}
		if s > 0 {
			ranked = append(ranked, scored{e: e, score: s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]Entry, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.e)
	}
	return out
}

// BuildPrompt prepends the matched reference material to the question so
// the model answers from the training content first.
func (b *Base) BuildPrompt(question string) string {
	matched := b.Relevant(question, 3)
	if len(matched) == 0 {
		return question
	}

	var sb strings.Builder
	sb.WriteString("Reference material:\n")
	for _, e := range matched {
		sb.WriteString("- ")
		sb.WriteString(e.Completion)
		sb.WriteString("\n")
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}

// keywords drops short filler words, keeping terms worth matching on.
func keywords(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, "?!.,:;\"'()")
		if len(w) > 3 {
			out[w] = struct{}{}
		}
	}
	return out
}
