package rtf

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/dbxloader/internal/core/domain"
	"github.com/custodia-labs/dbxloader/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles Rich Text Format files.
type Extractor struct{}

// New creates a new RTF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract decodes the RTF control stream to plain text, returned as a
// single fragment with surrounding whitespace stripped.
func (e *Extractor) Extract(_ context.Context, content []byte) ([]driven.Fragment, error) {
	text, err := decode(content)
	if err != nil {
		return nil, err
	}
	return []driven.Fragment{
		{Text: strings.TrimSpace(text)},
	}, nil
}

// destinations whose content is markup bookkeeping, not document text.
var skipDestinations = map[string]bool{
	"fonttbl":            true,
	"colortbl":           true,
	"stylesheet":         true,
	"info":               true,
	"header":             true,
	"footer":             true,
	"headerf":            true,
	"footerf":            true,
	"pict":               true,
	"object":             true,
	"themedata":          true,
	"colorschememapping": true,
	"listtable":          true,
	"listoverridetable":  true,
	"generator":          true,
	"latentstyles":       true,
	"datastore":          true,
	"xmlnstbl":           true,
}

// control words that translate directly to text.
var wordReplacements = map[string]string{
	"par":       "\n",
	"line":      "\n",
	"sect":      "\n",
	"page":      "\n",
	"row":       "\n",
	"tab":       "\t",
	"cell":      "\t",
	"emdash":    "—",
	"endash":    "–",
	"emspace":   " ",
	"enspace":   " ",
	"bullet":    "•",
	"lquote":    "‘",
	"rquote":    "’",
	"ldblquote": "“",
	"rdblquote": "”",
}

// groupState is the per-brace-group decoding state.
type groupState struct {
	// destination marks groups whose text is discarded.
	destination bool

	// ucSkip is how many fallback characters follow each \uN escape.
	ucSkip int
}

//nolint:gocyclo // single-pass scanner over the RTF grammar
func decode(data []byte) (string, error) {
	if !bytes.HasPrefix(data, []byte("{\\rtf")) {
		return "", fmt.Errorf("missing rtf header: %w", domain.ErrMalformedContent)
	}

	var out strings.Builder
	stack := []groupState{{ucSkip: 1}}
	cur := func() *groupState { return &stack[len(stack)-1] }

	// pendingSkip counts fallback bytes to discard after a \uN escape.
	pendingSkip := 0

	i := 0
	for i < len(data) {
		ch := data[i]
		switch ch {
		case '{':
			stack = append(stack, *cur())
			i++

		case '}':
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			i++

		case '\r', '\n':
			i++

		case '\\':
			i++
			if i >= len(data) {
				return "", fmt.Errorf("truncated control sequence: %w", domain.ErrMalformedContent)
			}
			c := data[i]

			switch {
			case c == '\'':
				// \'hh hex escape, codepage bytes mapped as Latin-1
				if i+2 >= len(data) {
					return "", fmt.Errorf("truncated hex escape: %w", domain.ErrMalformedContent)
				}
				b, err := strconv.ParseUint(string(data[i+1:i+3]), 16, 8)
				i += 3
				if err != nil {
					continue
				}
				if pendingSkip > 0 {
					pendingSkip--
				} else if !cur().destination {
					out.WriteRune(rune(b))
				}

			case isAlpha(c):
				word, param, next := readControlWord(data, i)
				i = next

				switch {
				case skipDestinations[word]:
					cur().destination = true
				case word == "uc":
					if n, err := strconv.Atoi(param); err == nil {
						cur().ucSkip = n
					}
				case word == "u":
					n, err := strconv.Atoi(param)
					if err == nil {
						if n < 0 {
							n += 0x10000
						}
						if !cur().destination {
							out.WriteRune(rune(n))
						}
						pendingSkip = cur().ucSkip
					}
				case word == "bin":
					// raw binary payload follows; skip it whole
					if n, err := strconv.Atoi(param); err == nil && n > 0 {
						i += n
					}
				default:
					if rep, ok := wordReplacements[word]; ok && !cur().destination {
						out.WriteString(rep)
					}
					// other control words carry formatting only
				}

			default:
				// control symbol
				i++
				switch c {
				case '\\', '{', '}':
					if pendingSkip > 0 {
						pendingSkip--
					} else if !cur().destination {
						out.WriteByte(c)
					}
				case '~':
					if !cur().destination {
						out.WriteRune(' ')
					}
				case '-':
					// optional hyphen, no text
				case '*':
					cur().destination = true
				case '\r', '\n':
					if !cur().destination {
						out.WriteByte('\n')
					}
				}
			}

		default:
			if pendingSkip > 0 {
				pendingSkip--
			} else if !cur().destination {
				out.WriteByte(ch)
			}
			i++
		}
	}

	return out.String(), nil
}

// readControlWord consumes a control word and its optional numeric
// parameter starting at the word's first letter. The single space
// delimiter, when present, is consumed too.
func readControlWord(data []byte, i int) (word, param string, next int) {
	start := i
	for i < len(data) && isAlpha(data[i]) {
		i++
	}
	word = string(data[start:i])

	numStart := i
	if i < len(data) && (data[i] == '-' || isDigit(data[i])) {
		i++
		for i < len(data) && isDigit(data[i]) {
			i++
		}
	}
	param = string(data[numStart:i])

	if i < len(data) && data[i] == ' ' {
		i++
	}
	return word, param, i
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
