package xmlparser

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// MaxDepth bounds element nesting so hostile documents cannot grow the
// tree without limit.
const MaxDepth = 256

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	errDirective     = errors.New("DOCTYPE and other markup declarations are not allowed")
	errNoRoot        = errors.New("document has no root element")
	errMultipleRoots = errors.New("markup after the root element is not allowed")
)

// Element is a read-only node of a parsed document. Only element structure
// and character data are kept; comments and processing instructions are
// dropped.
type Element struct {
	Name    string
	content []node
}

// node is either a run of character data or a child element.
type node struct {
	text  string
	child *Element
}

// ParseDocument reads an XML document into an element tree.
//
// The decoder runs in strict mode with no entity map, so only the five
// predefined XML entities resolve. Any <!DOCTYPE ...> or other directive is
// rejected outright, which keeps external and recursive entity expansion out
// of reach. A leading UTF-8 byte order mark is skipped and declared
// non-UTF-8 encodings such as ISO-8859-1 are transcoded.
func ParseDocument(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(skipBOM(r))
	decoder.Strict = true
	decoder.Entity = nil
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		root  *Element
		stack []*Element
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.Directive:
			return nil, errDirective
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, errMultipleRoots
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.content = append(parent.content, node{child: el})
			}
			stack = append(stack, el)
			if len(stack) > MaxDepth {
				return nil, fmt.Errorf("element nesting exceeds maximum depth of %d", MaxDepth)
			}
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, errMultipleRoots
				}
				continue
			}
			current := stack[len(stack)-1]
			current.content = append(current.content, node{text: string(t)})
		}
	}

	if root == nil {
		return nil, errNoRoot
	}
	return root, nil
}

// skipBOM drops a UTF-8 byte order mark at the start of r.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// TextContent returns the concatenated character data of the element and
// all of its descendants.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	for _, n := range e.content {
		if n.child != nil {
			n.child.writeText(sb)
		} else {
			sb.WriteString(n.text)
		}
	}
}

// Descendants returns every element below e named name, at any depth, in
// document order.
func (e *Element) Descendants(name string) []*Element {
	var found []*Element
	e.walk(func(el *Element) bool {
		if el.Name == name {
			found = append(found, el)
		}
		return true
	})
	return found
}

// First returns the first descendant named name, or nil.
func (e *Element) First(name string) *Element {
	var found *Element
	e.walk(func(el *Element) bool {
		if el.Name == name {
			found = el
			return false
		}
		return true
	})
	return found
}

// Text returns the trimmed text content of the first descendant named
// field. The boolean is false when no such element exists.
func (e *Element) Text(field string) (string, bool) {
	el := e.First(field)
	if el == nil {
		return "", false
	}
	return strings.TrimSpace(el.TextContent()), true
}

// walk visits descendants in pre-order until visit returns false.
func (e *Element) walk(visit func(*Element) bool) bool {
	for _, n := range e.content {
		if n.child == nil {
			continue
		}
		if !visit(n.child) || !n.child.walk(visit) {
			return false
		}
	}
	return true
}
