package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ParseJSON reads a JSON descriptor document.
func ParseJSON(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Document{}, nil
	}
	if err := detectDuplicateKeys(data); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	doc := &Document{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return doc, nil
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
}

// detectDuplicateKeys scans the token stream and reports the first object
// key seen twice in the same object.
func detectDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []frame

	// a finished value inside an object means the next string is a key
	valueDone := func() {
		if n := len(stack); n > 0 {
			if top := &stack[n-1]; top.kind == kindObject {
				top.expectingKey = true
			}
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true})
			case '[':
				stack = append(stack, frame{kind: kindArray})
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 {
				if top := &stack[n-1]; top.kind == kindObject && top.expectingKey {
					if _, dup := top.keys[v]; dup {
						return &DuplicateKeyError{Key: v}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}
}
