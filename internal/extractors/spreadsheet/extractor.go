package spreadsheet

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

// oleMagic is the compound-file signature of pre-OOXML office binaries.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Extractor handles spreadsheets. XLSX workbooks are decoded sheet by
// sheet; legacy BIFF (.xls) workbooks have no decoder and fail as
// unreadable content.
type Extractor struct{}

// New creates a new spreadsheet extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns one fragment per worksheet: rows as lines, cells
// separated by tabs.
func (e *Extractor) Extract(_ context.Context, content []byte) ([]driven.Fragment, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		if bytes.HasPrefix(content, oleMagic) {
			return nil, fmt.Errorf("BIFF workbook: %w", domain.ErrLegacyFormat)
		}
		return nil, fmt.Errorf("open workbook archive: %w", domain.ErrMalformedContent)
	}

	shared, err := readSharedStrings(reader)
	if err != nil {
		return nil, err
	}

	var fragments []driven.Fragment
	for _, file := range sheetFiles(reader) {
		text, err := readSheetText(file, shared)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, driven.Fragment{Text: text})
	}

	if fragments == nil {
		return nil, fmt.Errorf("no worksheets: %w", domain.ErrMalformedContent)
	}
	return fragments, nil
}

var sheetNumber = regexp.MustCompile(`sheet(\d+)\.xml$`)

// sheetFiles returns the worksheet parts in workbook order.
func sheetFiles(reader *zip.Reader) []*zip.File {
	var sheets []*zip.File
	for _, file := range reader.File {
		if strings.HasPrefix(file.Name, "xl/worksheets/sheet") && strings.HasSuffix(file.Name, ".xml") {
			sheets = append(sheets, file)
		}
	}

	sort.Slice(sheets, func(i, j int) bool {
		return sheetIndex(sheets[i].Name) < sheetIndex(sheets[j].Name)
	})
	return sheets
}

func sheetIndex(name string) int {
	m := sheetNumber.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// sharedStringXML is one <si> entry; rich-text entries split the text
// across runs.
type sharedStringXML struct {
	Text string   `xml:"t"`
	Runs []string `xml:"r>t"`
}

func (s sharedStringXML) value() string {
	if len(s.Runs) > 0 {
		return strings.Join(s.Runs, "")
	}
	return s.Text
}

type sharedStringsXML struct {
	Items []sharedStringXML `xml:"si"`
}

// readSharedStrings loads xl/sharedStrings.xml. Workbooks without string
// cells legitimately omit the part.
func readSharedStrings(reader *zip.Reader) ([]string, error) {
	for _, file := range reader.File {
		if file.Name != "xl/sharedStrings.xml" {
			continue
		}

		content, err := readZipFile(file)
		if err != nil {
			return nil, err
		}

		var sst sharedStringsXML
		if err := xml.Unmarshal(content, &sst); err != nil {
			return nil, fmt.Errorf("parse shared strings: %w", domain.ErrMalformedContent)
		}

		strs := make([]string, len(sst.Items))
		for i, item := range sst.Items {
			strs[i] = item.value()
		}
		return strs, nil
	}
	return nil, nil
}

// worksheetXML mirrors the parts of a sheet we read.
type worksheetXML struct {
	Rows []rowXML `xml:"sheetData>row"`
}

type rowXML struct {
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	Type   string `xml:"t,attr"`
	Value  string `xml:"v"`
	Inline string `xml:"is>t"`
}

// text resolves the cell's display text against the shared string table.
func (c cellXML) text(shared []string) string {
	switch c.Type {
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(c.Value))
		if err != nil || idx < 0 || idx >= len(shared) {
			return ""
		}
		return shared[idx]
	case "inlineStr":
		return c.Inline
	default:
		return c.Value
	}
}

func readSheetText(file *zip.File, shared []string) (string, error) {
	content, err := readZipFile(file)
	if err != nil {
		return "", err
	}

	var sheet worksheetXML
	if err := xml.Unmarshal(content, &sheet); err != nil {
		return "", fmt.Errorf("parse %s: %w", file.Name, domain.ErrMalformedContent)
	}

	var lines []string
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.text(shared)
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", file.Name, domain.ErrMalformedContent)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.Name, domain.ErrMalformedContent)
	}
	return content, nil
}
