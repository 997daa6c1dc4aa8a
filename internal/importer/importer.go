// Package importer loads medication lists from YAML files.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ykvlv/medication-reminder/internal/domain"
)

// File is the YAML document layout:
//
//	medications:
//	  - name: Vitamin D
//	    time: "08:30"
//	    start_date: 2025-05-01
//	    duration_days: 30
//	    frequency: once a day
type File struct {
	Medications []Entry `yaml:"medications"`
}

// Entry is one medication in a File.
type Entry struct {
	Name         string `yaml:"name"`
	Time         string `yaml:"time"`
	StartDate    string `yaml:"start_date"`
	DurationDays int    `yaml:"duration_days"`
	Frequency    string `yaml:"frequency"`
}

func (e Entry) input() domain.Input {
	return domain.Input{
		Name:                 e.Name,
		Time:                 e.Time,
		StartDate:            e.StartDate,
		DurationDays:         e.DurationDays,
		FrequencyDescription: e.Frequency,
	}
}

// Adder stores one validated medication. reminder.Service satisfies it.
type Adder interface {
	Add(ctx context.Context, in domain.Input) (*domain.Medication, error)
}

// Parse decodes r and validates every entry. Unknown keys are rejected.
// Nothing is returned unless all entries are valid.
func Parse(r io.Reader) ([]domain.Input, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	inputs := make([]domain.Input, 0, len(f.Medications))
	for i, e := range f.Medications {
		in := e.input()
		if _, err := domain.NewMedication(in); err != nil {
			return nil, fmt.Errorf("medication #%d (%q): %w", i+1, e.Name, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// ParseFile is Parse for a file on disk.
func ParseFile(path string) ([]domain.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Load adds every input through a and returns the stored medications.
// It stops at the first failure.
func Load(ctx context.Context, a Adder, inputs []domain.Input, log *zap.Logger) ([]domain.Medication, error) {
	out := make([]domain.Medication, 0, len(inputs))
	for i, in := range inputs {
		m, err := a.Add(ctx, in)
		if err != nil {
			return out, fmt.Errorf("add medication #%d (%q): %w", i+1, in.Name, err)
		}
		out = append(out, *m)
	}
	log.Info("medications imported", zap.Int("count", len(out)))
	return out, nil
}
