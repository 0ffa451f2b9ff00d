package project

import (
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/skiptools/ui"
)

const bannerTitle = "Smart Player Android TV App - Project Structure Validation"

var (
	rule     = strings.Repeat("=", 60)
	thinRule = strings.Repeat("-", 60)
)

// Print writes the human-readable validation report to w
func (r Report) Print(w io.Writer) {
	r.PrintChecked(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	if !r.Complete {
		fmt.Fprintf(w, "%s\n", ui.ErrorStyle.Render("✗ FAILURE: Some required files are missing!"))
		fmt.Fprintln(w, rule)
		return
	}

	fmt.Fprintf(w, "%s\n", ui.SuccessStyle.Render("✓ SUCCESS: All required files are present!"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Project is ready for GitHub Actions to build the APK.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "1. Push this project to a GitHub repository")
	fmt.Fprintln(w, "2. GitHub Actions will automatically build the APK")
	fmt.Fprintln(w, "3. Download the APK from Actions artifacts or Releases")
	fmt.Fprintln(w, rule)
}

// PrintChecked writes the banner and one line per checked entry, without the verdict
func (r Report) PrintChecked(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, bannerTitle)
	fmt.Fprintln(w, rule)

	for _, c := range r.Categories {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s\n", ui.InfoStyle.Render(fmt.Sprintf("Checking %s:", c.Title)))
		fmt.Fprintln(w, thinRule)
		for _, o := range c.Outcomes {
			if o.Present {
				fmt.Fprintf(w, "%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✓ %s: %s", o.Label, o.Path)))
			} else {
				fmt.Fprintf(w, "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("✗ MISSING %s: %s", o.Label, o.Path)))
			}
		}
	}
}
