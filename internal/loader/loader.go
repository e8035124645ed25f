// Package loader turns raw question data into a validated question set.
//
// Input is a JSON (or YAML) array of records with the keys id, type,
// question, options, answer and explanation. Missing fields get defaults;
// anything that cannot be repaired is reported as a *ValidationError.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizzer/internal/quiz"
)

// Format is the encoding of raw question data.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultOptions replaces a missing or empty option list.
var DefaultOptions = []string{"True", "False"}

// FormatFromPath picks the format from a file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// LoadFile reads and parses the question file at path.
func LoadFile(path string) ([]quiz.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes data and returns the normalised questions in input order.
// An empty array yields an empty, non-nil slice.
func Parse(data []byte, format Format) ([]quiz.Question, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, &ValidationError{Message: "malformed " + string(format), Err: err}
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, &ValidationError{Message: "question set must be an array"}
	}

	schema, err := questionSchema()
	if err != nil {
		return nil, fmt.Errorf("question schema: %w", err)
	}

	questions := make([]quiz.Question, 0, len(items))
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if err := schema.Validate(item); err != nil {
			return nil, &ValidationError{Item: i + 1, Message: "malformed question", Err: err}
		}
		q, err := normalize(i, item.(map[string]any))
		if err != nil {
			return nil, err
		}
		if first, dup := seen[q.ID]; dup {
			return nil, &ValidationError{
				Item:    i + 1,
				Message: fmt.Sprintf("duplicate id %q (also used by question %d)", q.ID, first),
			}
		}
		seen[q.ID] = i + 1
		questions = append(questions, q)
	}
	return questions, nil
}

// decode returns data as plain JSON values with numbers kept as json.Number.
func decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		// Re-encode so YAML and JSON input reach validation in the same shape.
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		data = b
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// normalize applies the defaults to one schema-checked record.
func normalize(i int, obj map[string]any) (quiz.Question, error) {
	q := quiz.Question{
		ID:           strconv.Itoa(i + 1),
		Type:         quiz.TypeMultipleChoice,
		Prompt:       fmt.Sprintf("Question %d", i+1),
		Options:      append([]string(nil), DefaultOptions...),
		CorrectIndex: 0,
	}

	switch id := obj["id"].(type) {
	case string:
		q.ID = id
	case json.Number:
		q.ID = canonicalNumber(id)
	}
	if t, ok := obj["type"].(string); ok {
		q.Type = t
	}
	if p, ok := obj["question"].(string); ok {
		q.Prompt = p
	}
	if opts, ok := obj["options"].([]any); ok && len(opts) > 0 {
		q.Options = make([]string, 0, len(opts))
		for _, o := range opts {
			q.Options = append(q.Options, o.(string))
		}
	}
	if e, ok := obj["explanation"].(string); ok {
		q.Explanation = e
	}

	if n, ok := obj["answer"].(json.Number); ok {
		if idx, ok := integer(n); ok {
			q.CorrectIndex = idx
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return quiz.Question{}, &ValidationError{
			Item:    i + 1,
			Message: fmt.Sprintf("answer %d is out of range for %d options", q.CorrectIndex, len(q.Options)),
		}
	}
	return q, nil
}

// integer converts n when it holds a whole number that fits in an int.
func integer(n json.Number) (int, bool) {
	if v, err := n.Int64(); err == nil {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// canonicalNumber renders whole numbers without a fraction so that 1 and
// 1.0 name the same question.
func canonicalNumber(n json.Number) string {
	if v, err := n.Int64(); err == nil {
		return strconv.FormatInt(v, 10)
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}
