// Package weidu parses WeiDU.log files into raw component id tokens.
//
// A WeiDU.log records every installed component, oldest first:
//
//	// Log of Currently Installed WeiDU Mods
//	~SETUP-BG1NPC.TP2~ #0 #0 // The BG1 NPC Project: Required Modifications: v30
//	~ASCENSION/ASCENSION.TP2~ #0 #10 // Ascension
//
// The mod id is the TP2 base name, lowercased, with any "setup-" prefix
// and the ".tp2" extension removed; the component key is the second
// #-number. The example above yields "bg1npc:0" and "ascension:10".
package weidu

import (
	"bufio"
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/modhearth/modorder/internal/domain/orderfile"
	"github.com/modhearth/modorder/internal/ports"
)

// Log is a parsed WeiDU.log. It satisfies orderfile.WeiDULog.
type Log struct {
	ids []string
}

// ComponentIDs returns the raw component id tokens in installation order.
func (l *Log) ComponentIDs() []string {
	return l.ids
}

// Parser reads WeiDU.log files through a file system port.
type Parser struct {
	fs ports.FileSystem
}

// NewParser creates a Parser reading through fs.
func NewParser(fs ports.FileSystem) *Parser {
	return &Parser{fs: fs}
}

// ParseFile reads and parses the WeiDU.log at path.
// Read failures are orderfile.ErrFileRead; unrecognized entry lines are
// orderfile.ErrInvalidFormat. Blank lines and // comments are skipped.
func (p *Parser) ParseFile(path string) (*Log, error) {
	raw, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", orderfile.ErrFileRead, path, err)
	}

	log := &Log{}
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		id, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", orderfile.ErrInvalidFormat, lineNo, err)
		}
		log.ids = append(log.ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", orderfile.ErrFileRead, path, err)
	}

	return log, nil
}

// parseEntry converts one "~TP2~ #lang #comp // name" line into a
// "mod_id:comp_key" token.
func parseEntry(line string) (string, error) {
	if !strings.HasPrefix(line, "~") {
		return "", fmt.Errorf("entry must start with '~': %q", line)
	}
	tp2, rest, ok := strings.Cut(line[1:], "~")
	if !ok || tp2 == "" {
		return "", fmt.Errorf("unterminated tp2 name: %q", line)
	}

	fields := strings.Fields(rest)
	if len(fields) < 2 || !strings.HasPrefix(fields[0], "#") || !strings.HasPrefix(fields[1], "#") {
		return "", fmt.Errorf("expected '#language #component' after tp2 name: %q", line)
	}
	comp := strings.TrimPrefix(fields[1], "#")
	if comp == "" {
		return "", fmt.Errorf("empty component number: %q", line)
	}

	return modID(tp2) + ":" + comp, nil
}

// modID derives the mod identifier from a TP2 path.
func modID(tp2 string) string {
	name := strings.ToLower(strings.ReplaceAll(tp2, `\`, "/"))
	name = path.Base(name)
	name = strings.TrimSuffix(name, ".tp2")
	name = strings.TrimPrefix(name, "setup-")
	return name
}
