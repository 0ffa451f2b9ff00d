package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/lepinkainen/skiptools/project"
)

func TestValidateCmd_EmptyDirectory(t *testing.T) {
	appCtx, out := testContext()
	cmd := &ValidateCmd{Dir: t.TempDir()}

	err := cmd.Run(appCtx)
	if !errors.Is(err, project.ErrIncomplete) {
		t.Fatalf("Run() error = %v, expected ErrIncomplete", err)
	}
	if !strings.Contains(out.String(), "✗ MISSING Gradle settings: settings.gradle.kts") {
		t.Errorf("expected missing marker, got:\n%s", out.String())
	}
}

func TestValidateCmd_CompleteProject(t *testing.T) {
	dir := t.TempDir()
	for _, c := range project.DefaultChecklist() {
		for _, e := range c.Entries {
			path := filepath.Join(dir, filepath.FromSlash(e.Path))
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}

	appCtx, out := testContext()
	if err := (&ValidateCmd{Dir: dir}).Run(appCtx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "SUCCESS: All required files are present!") {
		t.Errorf("expected success banner, got:\n%s", out.String())
	}
}

func TestValidateCmd_StatErrorPrintsCheckedLines(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.gradle.kts"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "build.gradle.kts"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "gradle.properties"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	locked := filepath.Join(dir, "app")
	if err := os.Mkdir(locked, 0000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	appCtx, out := testContext()
	err := (&ValidateCmd{Dir: dir}).Run(appCtx)
	if err == nil || errors.Is(err, project.ErrIncomplete) {
		t.Fatalf("Run() error = %v, expected a stat failure", err)
	}

	text := out.String()
	if !strings.Contains(text, "✓ Gradle settings: settings.gradle.kts") || !strings.Contains(text, "✓ Gradle properties: gradle.properties") {
		t.Errorf("expected lines checked before the failure, got:\n%s", text)
	}
	if strings.Contains(text, "FAILURE") || strings.Contains(text, "SUCCESS") {
		t.Errorf("no verdict expected after an aborted check:\n%s", text)
	}
}
