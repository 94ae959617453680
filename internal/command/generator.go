// Package command builds the shell commands that move a document into its
// destination folder, and checks them before they are shown or saved.
package command

import (
	"path"
	"strings"
	"time"

	"github.com/micetf/classifieur-numerique/internal/document"
)

const dateLayout = "2006-01-02"

// Generate returns the commented mkdir and mv commands that file sourceName
// under targetPath as targetName. An empty targetName becomes
// "<date>_<base>_v1.<ext>".
func Generate(targetPath, sourceName, targetName string, now time.Time) string {
	dir := cleanPath(targetPath)
	source := oneLine(sourceName)

	target := oneLine(targetName)
	if strings.TrimSpace(target) == "" {
		target = DatedName(source, now)
	}

	lines := []string{
		"# Création dossier cible (si nécessaire)",
		"mkdir -p " + quote(dir),
		"",
		"# Déplacement et renommage CRCN",
		"mv -v " + quote(source) + " " + quote(dir+"/"+target),
	}
	return strings.Join(lines, "\n")
}

// DatedName builds the default destination file name for sourceName.
func DatedName(sourceName string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(sourceName, `\`, "/"))
	date := now.Format(dateLayout)

	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		return date + "_" + base + "_v1"
	}
	return date + "_" + base[:dot] + "_v1" + base[dot:]
}

// cleanPath strips markup from a folder path suggested by the classifier.
func cleanPath(s string) string {
	return strings.TrimSpace(oneLine(document.Sanitize(s)))
}

// oneLine replaces line breaks so a value cannot smuggle extra commands onto
// a new line. File names are otherwise kept byte for byte; quote makes them
// shell-safe.
func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// quote wraps s in double quotes for a POSIX shell.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return `"` + r.Replace(s) + `"`
}
