package main

import (
	"bufio"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/curaedu/cura/core"
	"github.com/curaedu/cura/core/values"
)

// seedStatements loads value statements from a file, one per line, skipping
// blanks and statements whose text is already present.
func (cli *commandLine) seedStatements(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening statements file")
	}
	defer f.Close()

	existing, err := cli.valRepo.QueryAllStatements()
	if err != nil {
		return errors.Wrap(err, "querying statements")
	}
	seen := make(map[string]bool, len(existing))
	for _, stmt := range existing {
		seen[stmt.Text] = true
	}

	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := core.CleanString(scanner.Text())
		if text == "" || seen[text] {
			continue
		}
		stmt := values.Statement{ID: uuid.NewString(), Text: text}
		if _, err := cli.valRepo.CreateStatement(stmt); err != nil {
			return errors.Wrap(err, "creating statement")
		}
		seen[text] = true
		count++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading statements file")
	}
	logger.Printf("%d statements created", count)
	return nil
}
