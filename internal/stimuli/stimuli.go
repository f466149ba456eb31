// Package stimuli holds the fixed test items compiled into the binary.
//
// The item sets live in data/stimuli.json and are validated against
// data/schema.json when first loaded. They never change at runtime.
package stimuli

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/stimuli.json data/schema.json data/pictures/*.txt
var dataFS embed.FS

const schemaURL = "schema://stimuli.json"

// Set is the complete collection of fixed items for all tests.
type Set struct {
	Attention      Attention      `json:"attention"`
	Language       Language       `json:"language"`
	ProblemSolving ProblemSolving `json:"problem_solving"`
}

// Attention holds digit-span sequences and the symbol alphabet.
type Attention struct {
	// Forward lists the sequences to repeat as shown.
	Forward []string `json:"forward"`

	// Backward lists the expected answers for the backward phase. They are
	// stored already reversed; the answer is compared verbatim.
	Backward []string `json:"backward"`

	// Symbols is the CPT alphabet. Target must be one of them.
	Symbols []string `json:"symbols"`
	Target  string   `json:"target"`

	// Neutral fills non-target cells of the visual search grid.
	Neutral string `json:"neutral"`
}

// Object is a naming item: the expected word and a picture reference.
type Object struct {
	Word    string `json:"word"`
	Picture string `json:"picture"`
}

// Sentence is a completion prompt with its accepted answers.
type Sentence struct {
	Prompt  string   `json:"prompt"`
	Answers []string `json:"answers"`
}

// Language holds naming, completion and fluency items.
type Language struct {
	Objects       []Object   `json:"objects"`
	Sentences     []Sentence `json:"sentences"`
	FluencyLetter string     `json:"fluency_letter"`
}

// Sequence is a number sequence and the value that follows it.
type Sequence struct {
	Values []int `json:"sequence"`
	Next   int   `json:"next"`
}

// ProblemSolving holds pattern and sequence items.
type ProblemSolving struct {
	// Patterns are shown without their final value, which is the answer.
	Patterns  [][]int    `json:"patterns"`
	Sequences []Sequence `json:"sequences"`
}

// ValidationError reports a stimulus document that violates the schema or
// one of the cross-field rules.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid stimulus set: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

var (
	defaultOnce sync.Once
	defaultSet  *Set
	defaultErr  error

	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Default returns the embedded stimulus set. The result is cached.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/stimuli.json")
		if err != nil {
			defaultErr = fmt.Errorf("read embedded stimuli: %w", err)
			return
		}
		defaultSet, defaultErr = Parse(raw)
	})
	return defaultSet, defaultErr
}

// MustDefault is Default for callers that cannot proceed without stimuli.
func MustDefault() *Set {
	set, err := Default()
	if err != nil {
		panic(err)
	}
	return set
}

// Parse validates raw JSON against the stimulus schema and decodes it.
func Parse(raw []byte) (*Set, error) {
	compiled, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, &ValidationError{Err: err}
	}

	var set Set
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &ValidationError{Err: fmt.Errorf("decode: %w", err)}
	}
	if err := set.check(); err != nil {
		return nil, &ValidationError{Err: err}
	}
	return &set, nil
}

// check enforces the rules the schema cannot express.
func (s *Set) check() error {
	a := s.Attention
	if !slices.Contains(a.Symbols, a.Target) {
		return fmt.Errorf("attention target %q is not in the symbol alphabet", a.Target)
	}
	if a.Neutral == a.Target {
		return fmt.Errorf("attention neutral symbol must differ from the target")
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("read embedded schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}
