// Package input loads a group expense from a CSV or YAML file.
package input

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/validate"
)

// record is one participant as written in a group file. Amounts stay strings
// until validate.Amount parses them so errors read the same everywhere.
type record struct {
	Name   string `csv:"name" yaml:"name"`
	Amount string `csv:"amount" yaml:"amount"`
}

// yamlFile is the top-level layout of a YAML group file:
//
//	participants:
//	  - name: Alice
//	    amount: 90
type yamlFile struct {
	Participants []record `yaml:"participants"`
}

// Load reads a group from path. The format follows the extension:
// .csv (header name,amount) or .yaml/.yml.
func Load(path string) (models.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Group{}, fmt.Errorf("failed to open group file: %w", err)
	}
	defer f.Close()

	var group models.Group
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		group, err = ReadCSV(f)
	case ".yaml", ".yml":
		group, err = ReadYAML(f)
	default:
		return models.Group{}, fmt.Errorf("unsupported group file %q (want .csv, .yaml or .yml)", ext)
	}
	if err != nil {
		return models.Group{}, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Group file loaded", "path", path, "participants", len(group.Participants))
	return group, nil
}

// ReadCSV reads a group from CSV with a name,amount header.
func ReadCSV(r io.Reader) (models.Group, error) {
	var records []*record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return models.Group{}, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return toGroup(records)
}

// ReadYAML reads a group from YAML.
func ReadYAML(r io.Reader) (models.Group, error) {
	var file yamlFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return models.Group{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	records := make([]*record, len(file.Participants))
	for i := range file.Participants {
		records[i] = &file.Participants[i]
	}
	return toGroup(records)
}

func toGroup(records []*record) (models.Group, error) {
	group := models.Group{Participants: make([]models.Participant, 0, len(records))}
	names := make([]string, 0, len(records))
	for i, rec := range records {
		name, err := validate.Name(rec.Name, names)
		if err != nil {
			return models.Group{}, fmt.Errorf("participant %d: %w", i+1, err)
		}
		paid, err := validate.Amount(rec.Amount)
		if err != nil {
			return models.Group{}, fmt.Errorf("participant %d (%s): %w", i+1, name, err)
		}
		names = append(names, name)
		group.Participants = append(group.Participants, models.Participant{Name: name, Paid: paid})
	}
	return group, validate.Participants(group.Participants)
}
