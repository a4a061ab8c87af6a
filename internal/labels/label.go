package labels

import (
	"bytes"
	"encoding/json"
)

// Label is one issue-tracker label definition, kept exactly as read from its
// source: key order, unknown keys and field types all survive to the output.
// Known fields are name, color, description and replaces; only name and
// color are ever inspected.
type Label struct {
	raw    json.RawMessage
	fields map[string]json.RawMessage // nil when the record is not a JSON object
}

// NewLabel wraps one JSON array element. raw must be valid JSON; a value that
// is not an object is kept and later fails validation.
func NewLabel(raw json.RawMessage) Label {
	l := Label{raw: append(json.RawMessage(nil), raw...)}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		l.fields = fields
	}
	return l
}

// Field returns the raw value of key.
func (l Label) Field(key string) (json.RawMessage, bool) {
	raw, ok := l.fields[key]
	return raw, ok
}

// Name returns the name as text: the string value when name is a JSON
// string, the raw JSON otherwise, "" when absent.
func (l Label) Name() string {
	return l.text("name")
}

// Color returns the color as text, like Name.
func (l Label) Color() string {
	return l.text("color")
}

func (l Label) text(key string) string {
	raw, ok := l.fields[key]
	if !ok {
		return ""
	}
	if isJSONString(raw) {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return compactJSON(raw)
}

// key is the merge identity. A string name and a non-string name with the
// same text are distinct, and every record without a name shares one key.
func (l Label) key() string {
	raw, ok := l.fields["name"]
	if !ok {
		return ""
	}
	if isJSONString(raw) {
		return "s:" + l.Name()
	}
	return "r:" + compactJSON(raw)
}

// MarshalJSON returns the record as read.
func (l Label) MarshalJSON() ([]byte, error) {
	if len(l.raw) == 0 {
		return []byte("null"), nil
	}
	return l.raw, nil
}

// String renders the full record as compact JSON without HTML escaping, used
// when echoing a record in diagnostics.
func (l Label) String() string {
	if len(l.raw) == 0 {
		return "null"
	}
	return compactJSON(l.raw)
}

func isJSONString(raw json.RawMessage) bool {
	return len(raw) > 0 && raw[0] == '"'
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// MergedSet is an insertion-ordered mapping of label name to Label.
// The zero value is ready to use.
type MergedSet struct {
	index  map[string]int
	labels []Label
}

// Put stores label under its name. An existing entry is replaced in place,
// keeping the position of its first insertion.
func (s *MergedSet) Put(label Label) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	k := label.key()
	if i, ok := s.index[k]; ok {
		s.labels[i] = label
		return
	}
	s.index[k] = len(s.labels)
	s.labels = append(s.labels, label)
}

// Get returns the label whose name is the string name.
func (s *MergedSet) Get(name string) (Label, bool) {
	i, ok := s.index["s:"+name]
	if !ok {
		return Label{}, false
	}
	return s.labels[i], true
}

// Len returns the number of distinct names in the set.
func (s *MergedSet) Len() int {
	return len(s.labels)
}

// Labels returns a copy of the set in insertion order. Never nil.
func (s *MergedSet) Labels() []Label {
	out := make([]Label, len(s.labels))
	copy(out, s.labels)
	return out
}

// Merge folds sources left to right; later sources override earlier ones
// for the same name.
func Merge(sources ...[]Label) *MergedSet {
	set := &MergedSet{}
	for _, src := range sources {
		for _, label := range src {
			set.Put(label)
		}
	}
	return set
}
