package mindmap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoMap is returned when a FreeMind document's top-level element is not <map>.
var ErrNoMap = errors.New("no <map> element")

// ReadFreeMindFile loads a FreeMind ".mm" file. See [ReadFreeMind].
func ReadFreeMindFile(path string, order ChildOrder) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFreeMind(f, order)
}

// ReadFreeMind parses FreeMind XML of the form
//
//	<map version="...">
//	  <node ID="..." TEXT="...">
//	    <node .../>
//	  </node>
//	</map>
//
// The first <node> directly under <map> is the root; further top-level nodes
// are ignored. Only <node> elements nested directly in another <node> are
// children; icons, fonts, attributes and rich content are skipped. Missing IDs
// are synthesized as "auto_<n>" in pre-order starting at 1, and an empty TEXT
// falls back to the ID.
//
// The document is read as a token stream, so nesting depth is bounded only by
// memory.
func ReadFreeMind(r io.Reader, order ChildOrder) (*Tree, error) {
	type frameKind int
	const (
		frameMap frameKind = iota
		frameNode
		frameOther
	)
	type frame struct {
		kind   frameKind
		handle Handle
	}

	b := NewBuilder(order)
	dec := xml.NewDecoder(r)
	var stack []frame
	seenMap := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse freemind: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				if seenMap || el.Name.Local != "map" {
					return nil, fmt.Errorf("parse freemind: %w (found <%s>)", ErrNoMap, el.Name.Local)
				}
				seenMap = true
				stack = append(stack, frame{kind: frameMap})
				continue
			}

			top := stack[len(stack)-1]
			if el.Name.Local != "node" {
				stack = append(stack, frame{kind: frameOther})
				continue
			}
			id, text := nodeAttrs(el)
			switch {
			case top.kind == frameMap && !b.hasRoot:
				h, err := b.Root(id, text)
				if err != nil {
					return nil, fmt.Errorf("parse freemind: %w", err)
				}
				stack = append(stack, frame{kind: frameNode, handle: h})
			case top.kind == frameNode:
				h, err := b.Child(top.handle, id, text)
				if err != nil {
					return nil, fmt.Errorf("parse freemind: %w", err)
				}
				stack = append(stack, frame{kind: frameNode, handle: h})
			default:
				stack = append(stack, frame{kind: frameOther})
			}

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !seenMap {
		return nil, fmt.Errorf("parse freemind: %w", ErrNoMap)
	}
	return b.Build()
}

func nodeAttrs(el xml.StartElement) (id, text string) {
	for _, a := range el.Attr {
		switch a.Name.Local {
		case "ID":
			id = a.Value
		case "TEXT":
			text = a.Value
		}
	}
	return id, text
}
