// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package features

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pdiddy/styloguard/pkg/types"
)

// MarshalJSON encodes the set as {"<name>": {"<key>": v, ..., "Note": "..."}}
// with features in set order and sub-values in a fixed order.
func (s FeatureSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, string(n)); err != nil {
			return nil, err
		}
		if err := writeFeature(&buf, s.byName[n]); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", n, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeFeature(buf *bytes.Buffer, f Feature) error {
	buf.WriteByte('{')
	first := true
	field := func(key string, v any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeKey(buf, key); err != nil {
			return err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}

	if f.Key != "" {
		if err := field(string(f.Key), f.Value); err != nil {
			return err
		}
	}
	if f.Counts != nil {
		if err := writeCounts(buf, &first, f.Counts); err != nil {
			return err
		}
	}
	if f.Name == IdiosyncraticExpressions || f.List != nil {
		list := f.List
		if list == nil {
			list = []string{}
		}
		if err := field(string(KeyRepeatedBigramsList), list); err != nil {
			return err
		}
	}
	if err := field(string(KeyNote), f.Note); err != nil {
		return err
	}
	buf.WriteByte('}')
	return nil
}

// writeCounts emits POS counts in POSTags order followed by any other tags
// in lexical order.
func writeCounts(buf *bytes.Buffer, first *bool, counts map[types.POS]int) error {
	if !*first {
		buf.WriteByte(',')
	}
	*first = false
	if err := writeKey(buf, string(KeyCounts)); err != nil {
		return err
	}

	tags := append([]types.POS(nil), POSTags...)
	var extra []types.POS
	for tag := range counts {
		known := false
		for _, t := range POSTags {
			if t == tag {
				known = true
				break
			}
		}
		if !known {
			extra = append(extra, tag)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	tags = append(tags, extra...)

	buf.WriteByte('{')
	for i, tag := range tags {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(buf, string(tag)); err != nil {
			return err
		}
		fmt.Fprintf(buf, "%d", counts[tag])
	}
	buf.WriteByte('}')
	return nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	data, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(data)
	buf.WriteByte(':')
	return nil
}

// UnmarshalJSON decodes the blob written by MarshalJSON. Unknown feature
// names are kept; within a feature the first numeric sub-value other than
// the structured keys becomes its scalar.
func (s *FeatureSet) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding feature set: %w", err)
	}

	fs := make([]Feature, 0, len(raw))
	for name, fields := range raw {
		f, err := decodeFeature(Name(name), fields)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", name, err)
		}
		fs = append(fs, f)
	}
	*s = NewFeatureSet(fs...)
	return nil
}

func decodeFeature(name Name, fields map[string]json.RawMessage) (Feature, error) {
	f := Feature{Name: name}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	// Prefer the documented priority when several scalars are present.
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := keyRank(keys[i]), keyRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		v := fields[k]
		switch Key(k) {
		case KeyNote:
			if err := json.Unmarshal(v, &f.Note); err != nil {
				return f, err
			}
		case KeyCounts:
			var counts map[types.POS]int
			if err := json.Unmarshal(v, &counts); err != nil {
				return f, err
			}
			f.Counts = counts
		case KeyRepeatedBigramsList:
			var list []string
			if err := json.Unmarshal(v, &list); err != nil {
				return f, err
			}
			f.List = list
		default:
			if f.Key != "" {
				continue
			}
			var num float64
			if err := json.Unmarshal(v, &num); err != nil {
				return f, err
			}
			f.Key = Key(k)
			f.Value = num
		}
	}
	return f, nil
}

func keyRank(k string) int {
	for i, p := range ScalarPriority {
		if string(p) == k {
			return i
		}
	}
	return len(ScalarPriority)
}
