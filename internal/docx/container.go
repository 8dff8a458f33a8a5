package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Well-known part names inside an OPC word-processing container.
const (
	documentPart = "word/document.xml"
	relsPart     = "word/_rels/document.xml.rels"
	stylesPart   = "word/styles.xml"
)

var (
	ErrNoDocumentPart = errors.New("word/document.xml not found in archive")
	ErrNoBody         = errors.New("document has no w:body element")
)

// container holds every part of a .docx zip in memory, preserving the
// original part order so that saving produces a stable archive layout.
type container struct {
	parts map[string][]byte
	order []string
}

// openContainer reads all parts of the zip archive at path.
func openContainer(path string) (*container, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer zr.Close()

	c := &container{parts: make(map[string][]byte)}
	for _, f := range zr.File {
		name := normalizePath(f.Name)
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", name, err)
		}
		if _, seen := c.parts[name]; !seen {
			c.order = append(c.order, name)
		}
		c.parts[name] = data
	}

	if _, ok := c.parts[documentPart]; !ok {
		return nil, ErrNoDocumentPart
	}
	return c, nil
}

// setPart replaces (or adds) a part's content.
func (c *container) setPart(name string, data []byte) {
	name = normalizePath(name)
	if _, seen := c.parts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.parts[name] = data
}

// writeTo serializes the container back into zip form.
func (c *container) writeTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, name := range c.order {
		fw, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create part %s: %w", name, err)
		}
		if _, err := fw.Write(c.parts[name]); err != nil {
			return fmt.Errorf("failed to write part %s: %w", name, err)
		}
	}
	return zw.Close()
}

// writeFile writes the container to a file, replacing any existing content.
func (c *container) writeFile(path string) error {
	var buf bytes.Buffer
	if err := c.writeTo(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write DOCX: %w", err)
	}
	return nil
}

// normalizePath normalizes part paths (removes ./ prefix, backslashes).
func normalizePath(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	return strings.TrimPrefix(path, "./")
}
