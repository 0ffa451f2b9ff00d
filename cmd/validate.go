package cmd

import (
	"github.com/lepinkainen/skiptools/project"
	"github.com/lepinkainen/skiptools/types"
)

// ValidateCmd checks that every file the Android TV app needs is present
type ValidateCmd struct {
	Dir string `help:"Project root to validate" default:"." type:"existingdir"`
}

// Run prints one line per expected file and returns project.ErrIncomplete
// when anything is missing
func (cmd *ValidateCmd) Run(appCtx *types.AppContext) error {
	dir := cmd.Dir
	if dir == "" {
		dir = "."
	}

	report, err := project.Check(dir, project.DefaultChecklist())
	if err != nil {
		report.PrintChecked(appCtx.Out())
		return err
	}

	report.Print(appCtx.Out())
	appCtx.Log().Debug("project validation finished", "dir", dir, "missing", len(report.Missing()))

	if !report.Complete {
		return project.ErrIncomplete
	}
	return nil
}
