package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles OOXML slide decks.
type Extractor struct{}

// New creates a new presentation extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns one fragment per slide, in deck order. Text runs within
// one paragraph are concatenated; paragraphs become lines.
func (e *Extractor) Extract(_ context.Context, content []byte) ([]driven.Fragment, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open deck archive: %w", domain.ErrMalformedContent)
	}

	var fragments []driven.Fragment
	for _, file := range slideFiles(reader) {
		text, err := readSlideText(file)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, driven.Fragment{Text: text})
	}

	if fragments == nil {
		return nil, fmt.Errorf("no slides: %w", domain.ErrMalformedContent)
	}
	return fragments, nil
}

var slideNumber = regexp.MustCompile(`slide(\d+)\.xml$`)

// slideFiles returns the slide parts in deck order.
func slideFiles(reader *zip.Reader) []*zip.File {
	var slides []*zip.File
	for _, file := range reader.File {
		if strings.HasPrefix(file.Name, "ppt/slides/slide") && strings.HasSuffix(file.Name, ".xml") {
			slides = append(slides, file)
		}
	}

	sort.Slice(slides, func(i, j int) bool {
		return slideIndex(slides[i].Name) < slideIndex(slides[j].Name)
	})
	return slides
}

func slideIndex(name string) int {
	m := slideNumber.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// readSlideText walks the slide XML collecting <a:t> runs, breaking lines
// at paragraph boundaries.
func readSlideText(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", file.Name, domain.ErrMalformedContent)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var out strings.Builder
	inRun := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", file.Name, domain.ErrMalformedContent)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				out.WriteString("\n")
			}
		case xml.CharData:
			if inRun {
				out.Write(t)
			}
		}
	}

	// Trim blank lines left by empty paragraphs
	lines := strings.Split(out.String(), "\n")
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), nil
}
