// Package hyperlink is a reference vtparser.Hyperlinks implementation: an
// interning table so repeated OSC 8 URIs share one handle instead of being
// stored per-cell.
package hyperlink

import "github.com/nexpane/vtcore/vtparser"

type entry struct {
	uri    string
	params map[string]string
}

// Table is a reference Hyperlinks implementation.
type Table struct {
	entries []entry
	byURI   map[string]vtparser.HyperlinkHandle
}

// New returns an empty hyperlink table. Handle 0 is reserved for "no link".
func New() *Table {
	return &Table{entries: make([]entry, 1), byURI: make(map[string]vtparser.HyperlinkHandle)}
}

// Put interns uri/params, returning the existing handle if this exact URI
// was already seen (params are not part of the identity key, matching
// xterm's own OSC 8 de-duplication by URI).
func (t *Table) Put(uri string, params map[string]string) vtparser.HyperlinkHandle {
	if uri == "" {
		return 0
	}
	if h, ok := t.byURI[uri]; ok {
		return h
	}
	h := vtparser.HyperlinkHandle(len(t.entries))
	t.entries = append(t.entries, entry{uri: uri, params: params})
	t.byURI[uri] = h
	return h
}

func (t *Table) Get(h vtparser.HyperlinkHandle) (uri string, params map[string]string, ok bool) {
	if int(h) <= 0 || int(h) >= len(t.entries) {
		return "", nil, false
	}
	e := t.entries[h]
	return e.uri, e.params, true
}
