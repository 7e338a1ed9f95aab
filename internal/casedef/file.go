package casedef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// caseFile is the on-disk JSON form of a case definition.
type caseFile struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Specialty     string          `json:"specialty"`
	Difficulty    string          `json:"difficulty"`
	Credits       float64         `json:"credits"`
	ReferenceText string          `json:"reference_text"`
	Stages        []stageFileSpec `json:"stages"`
}

type stageFileSpec struct {
	ID         string   `json:"stage_id"`
	Header     string   `json:"header"`
	Options    []string `json:"options"`
	Optimal    string   `json:"optimal"`
	IsTerminal bool     `json:"is_terminal"`
}

// SaveFile writes a case definition as JSON to dir, named <id>.json.
// The definition is validated before writing.
func SaveFile(dir string, c *CaseDefinition) (string, error) {
	if err := Validate(c); err != nil {
		return "", err
	}

	f := caseFile{
		ID:            c.ID,
		Title:         c.Title,
		Specialty:     c.Specialty,
		Difficulty:    c.Difficulty,
		Credits:       c.Credits,
		ReferenceText: c.ReferenceText,
	}
	for _, st := range c.Stages {
		f.Stages = append(f.Stages, stageFileSpec{
			ID:         string(st.ID),
			Header:     st.Header,
			Options:    st.Options[:],
			Optimal:    st.Optimal,
			IsTerminal: st.IsTerminal,
		})
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, c.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadFile parses one case definition from a JSON file. The result is
// validated but not registered.
func LoadFile(path string) (*CaseDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f caseFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c := &CaseDefinition{
		ID:            f.ID,
		Title:         f.Title,
		Specialty:     f.Specialty,
		Difficulty:    f.Difficulty,
		Credits:       f.Credits,
		ReferenceText: f.ReferenceText,
	}
	for _, st := range f.Stages {
		spec := StageSpec{
			ID:         StageID(st.ID),
			Header:     st.Header,
			Optimal:    st.Optimal,
			IsTerminal: st.IsTerminal,
		}
		if len(st.Options) != OptionCount {
			return nil, fmt.Errorf("%s: stage %q has %d options, want %d", path, st.ID, len(st.Options), OptionCount)
		}
		copy(spec.Options[:], st.Options)
		c.Stages = append(c.Stages, spec)
	}

	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadDir registers every *.json case definition in dir. A missing dir
// is not an error; individual files that fail to parse or validate are.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		c, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		if err := Register(c); err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
	}
	return nil
}
