package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrIncomplete is returned by callers when at least one expected file is missing
var ErrIncomplete = errors.New("project structure incomplete")

// Outcome is the result of checking a single entry
type Outcome struct {
	Entry
	Present bool
}

// CategoryOutcome holds the outcomes for one category, in checklist order
type CategoryOutcome struct {
	Title    string
	Outcomes []Outcome
}

// Report is the result of checking a whole checklist
type Report struct {
	Categories []CategoryOutcome
	Complete   bool
}

// Missing returns every entry that was not found
func (r Report) Missing() []Entry {
	var missing []Entry
	for _, c := range r.Categories {
		for _, o := range c.Outcomes {
			if !o.Present {
				missing = append(missing, o.Entry)
			}
		}
	}
	return missing
}

// Check tests every entry for existence under root. Only "does not exist" counts
// as missing; any other stat failure aborts the check. On abort the returned
// report holds the entries checked so far and is never Complete.
func Check(root string, categories []Category) (Report, error) {
	report := Report{Complete: true}

	for _, c := range categories {
		co := CategoryOutcome{Title: c.Title}
		for _, e := range c.Entries {
			present, err := exists(filepath.Join(root, filepath.FromSlash(e.Path)))
			if err != nil {
				report.Complete = false
				if len(co.Outcomes) > 0 {
					report.Categories = append(report.Categories, co)
				}
				return report, fmt.Errorf("cannot check %s: %w", e.Path, err)
			}
			co.Outcomes = append(co.Outcomes, Outcome{Entry: e, Present: present})
			report.Complete = report.Complete && present
		}
		report.Categories = append(report.Categories, co)
	}

	return report, nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
