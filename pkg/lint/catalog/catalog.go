// Package catalog loads the per-language diagnostic message catalogs.
//
// A catalog is a text file named errors.<language>. Each record is one line
// of three tab-separated fields:
//
//	key<TAB>message<TAB>explanation
//
// Blank lines and lines starting with '#' are ignored. The English catalog
// is compiled into the binary; a data directory can override it or supply
// other languages.
package catalog

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

//go:embed data/errors.*
var embedded embed.FS

// ErrUnknownLanguage is returned when no catalog exists for a language.
var ErrUnknownLanguage = errors.New("no message catalog for language")

// Entry is one catalog record.
type Entry struct {
	Key         string
	Message     string
	Explanation string
}

// Catalog maps defect keys to their messages.
type Catalog struct {
	Language string
	entries  map[string]Entry
	keys     []string
}

// Parse reads a catalog in the tab-separated format.
func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry)}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("catalog line %d: expected key<TAB>message<TAB>explanation", lineNo)
		}
		e := Entry{Key: fields[0], Message: fields[1]}
		if len(fields) > 2 {
			e.Explanation = fields[2]
		}
		if _, dup := c.entries[e.Key]; !dup {
			c.keys = append(c.keys, e.Key)
		}
		c.entries[e.Key] = e
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return c, nil
}

// Load opens the catalog for lang. An empty dataDir selects the catalogs
// compiled into the binary.
func Load(dataDir, lang string) (*Catalog, error) {
	base, err := NormalizeLanguage(lang)
	if err != nil {
		return nil, err
	}
	name := "errors." + base

	var f io.ReadCloser
	if dataDir == "" {
		f, err = embedded.Open("data/" + name)
	} else {
		f, err = os.Open(filepath.Join(dataDir, name))
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, base)
		}
		return nil, fmt.Errorf("failed to open catalog %s: %w", name, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	c.Language = base
	return c, nil
}

// NormalizeLanguage reduces a BCP 47 tag such as "en-GB" to its base
// language code ("en"), which is how catalog files are named.
func NormalizeLanguage(lang string) (string, error) {
	if strings.TrimSpace(lang) == "" {
		return DefaultLanguage, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", lang, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// Lookup returns the entry for key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	e, ok := c.entries[key]
	if !ok || e.Message == "" {
		return Entry{}, false
	}
	return e, true
}

// Message returns the message for key, or "" when unknown.
func (c *Catalog) Message(key string) string {
	e, _ := c.Lookup(key)
	return e.Message
}

// Explanation returns the explanation for key, or "" when unknown.
func (c *Catalog) Explanation(key string) string {
	e, _ := c.Lookup(key)
	return e.Explanation
}

// Keys returns the keys in file order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
