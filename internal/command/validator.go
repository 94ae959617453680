package command

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// dangerousPatterns are rejected anywhere in a command.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)rm\s+(-rf?|--force)\s+`),
	regexp.MustCompile(`(?i)>\s*/dev/`),
	regexp.MustCompile(`(?i)>\s*/etc/`),
	regexp.MustCompile(`(?i);\s*rm`),
	regexp.MustCompile(`(?i)&\s*rm`),
	regexp.MustCompile(`(?i)\|\s*rm`),
	regexp.MustCompile(`(?i)sudo`),
	regexp.MustCompile(`(?i)su\s+-`),
	regexp.MustCompile(`(?i)chmod\s+777`),
	regexp.MustCompile(`(?i)dd\s+if=`),
	regexp.MustCompile(`:\(\)\s*\{\s*:\|:&\s*\};:`),
}

var allowedCommands = map[string]bool{
	"mkdir": true,
	"mv":    true,
}

// Validation is the outcome of Validate.
type Validation struct {
	Errors []string `json:"errors"`
	Valid  bool     `json:"isValid"`
}

// Validate checks that command only creates folders and moves files.
func Validate(command string) Validation {
	errs := []string{}

	for _, p := range dangerousPatterns {
		if p.MatchString(command) {
			errs = append(errs, fmt.Sprintf("La commande contient un motif potentiellement dangereux: %s", p))
		}
	}

	for _, line := range strings.Split(command, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name := strings.Fields(line)[0]
		if !allowedCommands[name] {
			errs = append(errs, fmt.Sprintf("Commande non autorisée: %s", name))
		}
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// Generated is a command with its validation.
type Generated struct {
	Command    string     `json:"command"`
	Validation Validation `json:"validation"`
}

// GenerateAndValidate generates the command and validates it.
func GenerateAndValidate(targetPath, sourceName, targetName string, now time.Time) Generated {
	cmd := Generate(targetPath, sourceName, targetName, now)
	return Generated{Command: cmd, Validation: Validate(cmd)}
}
