package moderation

import (
	"bufio"
	"bytes"
	"chat-relay/errors"
	"io/fs"
	"path"
	"strings"
)

// PhraseLists carries the result of the loading process including metadata for logging.
type PhraseLists struct {
	Phrases []string
	Lists   []string
}

// PhraseLoader reads banned phrase lists (one phrase per line) from a filesystem.
type PhraseLoader struct {
	fs fs.FS
}

func NewPhraseLoader(f fs.FS) *PhraseLoader {
	return &PhraseLoader{fs: f}
}

// LoadAll reads every .txt file of dir as a phrase list.
// Lines are trimmed, blank lines and lines starting with '#' are skipped.
// An empty result is not an error: the relay may run without banned phrases.
func (l *PhraseLoader) LoadAll(dir string) (*PhraseLists, error) {
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}

	var lists []string
	unique := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() {
			return nil, errors.ErrNotAPhraseFile
		}
		if !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		lists = append(lists, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(l.fs, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		// Scanner handles \n and \r\n alike
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			unique[line] = struct{}{}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	phrases := make([]string, 0, len(unique))
	for p := range unique {
		phrases = append(phrases, p)
	}
	return &PhraseLists{Phrases: Normalize(phrases), Lists: lists}, nil
}
