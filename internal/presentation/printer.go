package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/common-nighthawk/go-figure"

	"mediaship/internal/domain"
)

// Printer renders all user-facing output of the flow.
type Printer struct {
	Writer  io.Writer
	Verbose bool
}

// Welcome clears the screen and prints the banner plus the selection hint.
func (p Printer) Welcome(host string) {
	fmt.Fprint(p.Writer, "\033[H\033[2J")

	banner := figure.NewFigure(" MEDIASHIP ", "larry3d", true)
	fmt.Fprintln(p.Writer, bannerStyle.Render(banner.String()))

	hint := fmt.Sprintf(
		"\nPlease select the files/folders you want to copy to %s: "+
			"(SPACE to select, UP/DOWN to move, ENTER to continue)\n", host)
	fmt.Fprintln(p.Writer, dangerStyle.Render(hint))
	fmt.Fprintln(p.Writer, strings.Repeat("-", 90))
}

// Bye prints the farewell message and returns the process exit status. The
// farewell always exits with 1; callers treat that as the normal ending.
func (p Printer) Bye(message string) int {
	if message == "" {
		message = "\nFarewell!\n"
	}
	fmt.Fprintln(p.Writer, dangerStyle.Render(message))
	return 1
}

// TransferPlan prints the destination and the directory-qualified list of
// files about to be copied.
func (p Printer) TransferPlan(set domain.SelectionSet, destination string) {
	fmt.Fprintln(p.Writer,
		headlineStyle.Render("You are about to copy the following files/folders into"),
		dangerStyle.Render(destination))
	for _, src := range set.CollectFiles() {
		fmt.Fprintf(p.Writer, " - %s\n", fileStyle.Render(src.Path))
	}
}

func (p Printer) Copying() {
	fmt.Fprintln(p.Writer, successStyle.Render("Copying..."))
}

// Progress renders a single in-place progress line for the file currently
// being transmitted.
func (p Printer) Progress(name string, size, sent int64) {
	fmt.Fprintf(p.Writer, "%s\r", FormatProgress(name, size, sent))
}

// FormatProgress builds the per-file progress line: name, human-readable
// size and the percentage of bytes sent.
func FormatProgress(name string, size, sent int64) string {
	percent := 0
	if size > 0 {
		percent = int(float64(sent) / float64(size) * 100)
	}
	return fmt.Sprintf(" %s (%s): %s%s",
		headlineStyle.Render(name),
		domain.FormatSize(float64(size)),
		successStyle.Render(fmt.Sprintf("%d%%", percent)),
		strings.Repeat(" ", 10))
}

func (p Printer) Copied(name string) {
	fmt.Fprintf(p.Writer, "%s %s%s\n", fileStyle.Render(name), iconCheck, strings.Repeat(" ", 30))
}

func (p Printer) SettingPermissions() {
	fmt.Fprintln(p.Writer, dangerStyle.Render("\nSetting permissions on copied files..."))
}

func (p Printer) CheckingFiles() {
	fmt.Fprintln(p.Writer, successStyle.Render("Checking files..."))
}

// Raw prints remote command output as-is.
func (p Printer) Raw(output string) {
	fmt.Fprint(p.Writer, output)
	if !strings.HasSuffix(output, "\n") {
		fmt.Fprintln(p.Writer)
	}
}

func (p Printer) SpaceLeft(space string) {
	fmt.Fprintf(p.Writer, "%s: %s\n", successStyle.Render("Space left"), dangerStyle.Render(space))
}

// RemovalPlan prints every path about to be deleted, flagging directories.
func (p Printer) RemovalPlan(paths []string, dirs []bool) {
	fmt.Fprintln(p.Writer, dangerStyle.Render("\nFiles to be removed:\n"))
	for i, path := range paths {
		line := fmt.Sprintf(" - %s", path)
		if dirs[i] {
			line += " " + fileStyle.Render("(directory)")
		}
		fmt.Fprintln(p.Writer, dangerStyle.Render(line))
	}
}

func (p Printer) Removed(path string) {
	fmt.Fprintf(p.Writer, "%s %s\n", dangerStyle.Render("Removed:"), fileStyle.Render(path))
}

func (p Printer) NotRemoving() {
	fmt.Fprintln(p.Writer, "Not removing local files!")
}

func (p Printer) RenameHeader(destination string) {
	fmt.Fprintln(p.Writer, headlineStyle.Render(fmt.Sprintf("\nRenaming files in %s", destination)))
}

func (p Printer) SeasonNotInferred() {
	fmt.Fprintln(p.Writer, dangerStyle.Render(
		"Season number could not be inferred from the folder structure. Renaming was skipped!"))
}

func (p Printer) RenameProposal(old, new string) {
	fmt.Fprintln(p.Writer, headlineStyle.Render(fmt.Sprintf("Will rename %s to %s", old, new)))
}

func (p Printer) RenameSkip(file string) {
	fmt.Fprintln(p.Writer, dangerStyle.Render(fmt.Sprintf("Skipping file with no episode number: %s", file)))
}

func (p Printer) Renamed(old, new string) {
	fmt.Fprintln(p.Writer, successStyle.Render(fmt.Sprintf("- Renamed %s to %s", old, new)))
}

func (p Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.Writer, format+"\n", args...)
}
