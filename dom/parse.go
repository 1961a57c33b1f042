package dom

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	xpath "github.com/deadtrickster/plexippus-xpath"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

type config struct {
	trimSpace bool
}

type ParseOption func(*config)

// TrimWhitespace drops whitespace-only text nodes while parsing.
func TrimWhitespace() ParseOption {
	return func(c *config) { c.trimSpace = true }
}

// ParseBytes parses an XML document from data.
func ParseBytes(data []byte, opts ...ParseOption) (*Node, error) {
	return Parse(bytes.NewReader(data), opts...)
}

// Parse parses an XML document from r into a node tree rooted at a
// KindRoot node. Each element receives its own namespace nodes for
// the bindings in scope at that element, so namespace node identity
// is per element as the XPath data model requires.
func Parse(r io.Reader, opts ...ParseOption) (*Node, error) {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}
	dec := xml.NewDecoder(r)
	root := &Node{Type: xpath.KindRoot}
	cur := root
	scopes := []map[string]string{{"xml": xmlNamespace}}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			scope := scopes[len(scopes)-1]
			scope = declaredScope(scope, t.Attr)
			scopes = append(scopes, scope)
			el := &Node{
				Type:        xpath.KindElement,
				Parent:      cur,
				ParentIndex: len(cur.Children),
				Space:       t.Name.Space,
				Prefix:      prefixFor(scope, t.Name.Space),
				Local:       t.Name.Local,
			}
			for i, p := range slices.Sorted(maps.Keys(scope)) {
				el.Namespaces = append(el.Namespaces, &Node{
					Type:        xpath.KindNamespace,
					Parent:      el,
					ParentIndex: i,
					Prefix:      p,
					Value:       scope[p],
				})
			}
			for _, a := range t.Attr {
				if _, ok := xmlnsDecl(a); ok {
					continue
				}
				at := &Node{
					Type:        xpath.KindAttribute,
					Parent:      el,
					ParentIndex: len(el.Attrs),
					Space:       a.Name.Space,
					Local:       a.Name.Local,
					Value:       a.Value,
				}
				if a.Name.Space != "" {
					at.Prefix = prefixFor(scope, a.Name.Space)
				}
				el.Attrs = append(el.Attrs, at)
			}
			cur.Children = append(cur.Children, el)
			cur = el
		case xml.EndElement:
			scopes = scopes[:len(scopes)-1]
			cur = cur.Parent
		case xml.CharData:
			text := string(t)
			if cfg.trimSpace && strings.TrimSpace(text) == "" {
				continue
			}
			if k := len(cur.Children); k > 0 && cur.Children[k-1].Type == xpath.KindText {
				cur.Children[k-1].Value += text
				continue
			}
			cur.Children = append(cur.Children, &Node{
				Type:        xpath.KindText,
				Parent:      cur,
				ParentIndex: len(cur.Children),
				Value:       text,
			})
		case xml.Comment:
			cur.Children = append(cur.Children, &Node{
				Type:        xpath.KindComment,
				Parent:      cur,
				ParentIndex: len(cur.Children),
				Value:       string(t),
			})
		case xml.ProcInst:
			// The XML declaration is not a node in the data model.
			if t.Target == "xml" {
				continue
			}
			cur.Children = append(cur.Children, &Node{
				Type:        xpath.KindProcInst,
				Parent:      cur,
				ParentIndex: len(cur.Children),
				Local:       t.Target,
				Value:       string(t.Inst),
			})
		case xml.Directive:
			// DOCTYPE and friends carry no nodes.
		}
	}
	if cur != root {
		return nil, fmt.Errorf("%w: unclosed element %s", ErrParse, cur.Name())
	}
	return root, nil
}

// declaredScope layers the xmlns declarations of attrs over scope,
// copying only when there is something to declare. An empty URI
// undeclares its prefix.
func declaredScope(scope map[string]string, attrs []xml.Attr) map[string]string {
	var next map[string]string
	for _, a := range attrs {
		prefix, ok := xmlnsDecl(a)
		if !ok {
			continue
		}
		if next == nil {
			next = make(map[string]string, len(scope)+1)
			maps.Copy(next, scope)
		}
		if a.Value == "" {
			delete(next, prefix)
			continue
		}
		next[prefix] = a.Value
	}
	if next == nil {
		return scope
	}
	return next
}

func xmlnsDecl(a xml.Attr) (prefix string, ok bool) {
	if a.Name.Space == "xmlns" {
		return a.Name.Local, true
	}
	if a.Name.Space == "" && a.Name.Local == "xmlns" {
		return "", true
	}
	return "", false
}

// prefixFor reverse-maps a namespace URI to a declared prefix for
// display names, preferring the default namespace, then the
// lexicographically first prefix.
func prefixFor(scope map[string]string, uri string) string {
	if uri == "" || scope[""] == uri {
		return ""
	}
	best := ""
	for _, p := range slices.Sorted(maps.Keys(scope)) {
		if p == "" || scope[p] != uri {
			continue
		}
		best = p
		break
	}
	return best
}
