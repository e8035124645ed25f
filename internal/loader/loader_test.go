package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizzer/internal/quiz"
)

func TestParse_FullRecord(t *testing.T) {
	data := `[{
		"id": 7,
		"type": "mcq",
		"question": "2 + 2?",
		"options": ["3", "4", "5"],
		"answer": 1,
		"explanation": "Two pairs."
	}]`

	qs, err := Parse([]byte(data), FormatJSON)
	require.NoError(t, err)
	require.Len(t, qs, 1)

	assert.Equal(t, quiz.Question{
		ID:           "7",
		Type:         "mcq",
		Prompt:       "2 + 2?",
		Options:      []string{"3", "4", "5"},
		CorrectIndex: 1,
		Explanation:  "Two pairs.",
	}, qs[0])
}

func TestParse_Defaults(t *testing.T) {
	qs, err := Parse([]byte(`[{}, {"question": null, "options": [], "answer": "2"}]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, qs, 2)

	for i, q := range qs {
		assert.Equal(t, []string{"True", "False"}, q.Options, "question %d options", i+1)
		assert.Equal(t, quiz.TypeMultipleChoice, q.Type)
		assert.Equal(t, 0, q.CorrectIndex)
		assert.Equal(t, "", q.Explanation)
	}
	assert.Equal(t, "1", qs[0].ID)
	assert.Equal(t, "Question 1", qs[0].Prompt)
	assert.Equal(t, "2", qs[1].ID)
	assert.Equal(t, "Question 2", qs[1].Prompt)
}

func TestParse_DefaultOptionsNotShared(t *testing.T) {
	qs, err := Parse([]byte(`[{}, {}]`), FormatJSON)
	require.NoError(t, err)

	qs[0].Options[0] = "changed"
	assert.Equal(t, "True", qs[1].Options[0])
	assert.Equal(t, "True", DefaultOptions[0])
}

func TestParse_AnswerCoercion(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"integer", `1`, 1},
		{"whole float", `1.0`, 1},
		{"fraction falls back", `0.5`, 0},
		{"string falls back", `"1"`, 0},
		{"bool falls back", `true`, 0},
		{"null falls back", `null`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `[{"options": ["a", "b"], "answer": ` + tt.answer + `}]`
			qs, err := Parse([]byte(data), FormatJSON)
			require.NoError(t, err)
			assert.Equal(t, tt.want, qs[0].CorrectIndex)
		})
	}
}

func TestParse_IDs(t *testing.T) {
	qs, err := Parse([]byte(`[{"id": "intro"}, {"id": 2.0}, {}]`), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "intro", qs[0].ID)
	assert.Equal(t, "2", qs[1].ID)
	assert.Equal(t, "3", qs[2].ID)
}

func TestParse_EmptyArray(t *testing.T) {
	qs, err := Parse([]byte(`[]`), FormatJSON)
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantItem int
	}{
		{"not json", `{oops`, 0},
		{"empty input", ``, 0},
		{"object", `{"id": 1}`, 0},
		{"string", `"questions"`, 0},
		{"null", `null`, 0},
		{"item not object", `[{}, 3]`, 2},
		{"item null", `[null]`, 1},
		{"options wrong type", `[{"options": "True,False"}]`, 1},
		{"option not string", `[{"options": ["a", 2]}]`, 1},
		{"question wrong type", `[{"question": 42}]`, 1},
		{"explanation wrong type", `[{"explanation": ["x"]}]`, 1},
		{"fractional id", `[{"id": 1.5}]`, 1},
		{"answer out of range", `[{}, {"options": ["a", "b"], "answer": 2}]`, 2},
		{"negative answer", `[{"answer": -1}]`, 1},
		{"duplicate ids", `[{"id": 1}, {"id": "1"}]`, 2},
		{"default id collides", `[{"id": 2}, {}]`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := Parse([]byte(tt.data), FormatJSON)
			require.Error(t, err)
			assert.Nil(t, qs)
			assert.True(t, errors.Is(err, quiz.ErrInvalidQuestionSet), "got %v", err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantItem, verr.Item)
		})
	}
}

func TestParse_NotArrayLeavesSessionUnchanged(t *testing.T) {
	s := quiz.NewSession()
	require.NoError(t, s.Initialize([]quiz.Question{{ID: "1", Options: []string{"a"}}}))
	require.NoError(t, s.SelectAnswer("1", 0))

	qs, err := Parse([]byte(`{"not": "an array"}`), FormatJSON)
	require.ErrorIs(t, err, quiz.ErrInvalidQuestionSet)
	if err == nil {
		require.NoError(t, s.Initialize(qs))
	}

	assert.Equal(t, 1, s.Total())
	assert.Equal(t, 1, s.Score())
}

func TestParse_YAML(t *testing.T) {
	data := `
- id: 1
  question: Capital of France?
  options: [Paris, Lyon]
  answer: 0
  explanation: It has been since 987.
- question: Water boils at 100C at sea level
`
	qs, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "1", qs[0].ID)
	assert.Equal(t, []string{"Paris", "Lyon"}, qs[0].Options)
	assert.Equal(t, "It has been since 987.", qs[0].Explanation)
	assert.Equal(t, "2", qs[1].ID)
	assert.Equal(t, []string{"True", "False"}, qs[1].Options)
}

func TestParse_YAMLNotArray(t *testing.T) {
	_, err := Parse([]byte("title: quiz\n"), FormatYAML)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestionSet)

	_, err = Parse([]byte("- [unclosed\n"), FormatYAML)
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestionSet)
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse([]byte(`[]`), Format("toml"))
	assert.ErrorIs(t, err, quiz.ErrInvalidQuestionSet)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("set.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("SET.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("set.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("questions"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "set.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"id": 1, "options": ["True", "False"], "answer": 0}]`), 0o644))
	qs, err := LoadFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "1", qs[0].ID)

	yamlPath := filepath.Join(dir, "set.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- question: hi\n"), 0o644))
	qs, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "hi", qs[0].Prompt)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, quiz.ErrInvalidQuestionSet))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Item: 3, Message: "answer 5 is out of range for 2 options"}
	assert.Equal(t, "invalid question set: question 3: answer 5 is out of range for 2 options", err.Error())

	err = &ValidationError{Message: "question set must be an array"}
	assert.Equal(t, "invalid question set: question set must be an array", err.Error())
}
