package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/spellit/internal/words"
)

// WordListKey is the KV name under which the master list is stored.
const WordListKey = "words"

// ErrInvalidWordList is returned when the stored list does not match the
// expected shape.
var ErrInvalidWordList = errors.New("invalid stored word list")

const wordListSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["key", "translation"],
    "properties": {
      "key": {"type": "string", "minLength": 1},
      "translation": {"type": "string", "minLength": 1}
    },
    "additionalProperties": false
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// WordListRepo stores the master word list as a JSON array of
// {"key", "translation"} objects in the KV table.
type WordListRepo struct {
	kv KVRepo
}

// NewWordListRepo creates a WordListRepo on top of kv.
func NewWordListRepo(kv KVRepo) *WordListRepo {
	return &WordListRepo{kv: kv}
}

// Load returns the stored list, or nil if none was stored.
func (r *WordListRepo) Load(ctx context.Context) ([]words.Entry, error) {
	raw, ok, err := r.kv.Get(ctx, WordListKey)
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return DecodeWordList([]byte(raw))
}

// Save replaces the stored list.
func (r *WordListRepo) Save(ctx context.Context, entries []words.Entry) error {
	b, err := EncodeWordList(entries)
	if err != nil {
		return err
	}
	if err := r.kv.Put(ctx, WordListKey, string(b)); err != nil {
		return fmt.Errorf("save word list: %w", err)
	}
	return nil
}

// EncodeWordList serializes entries in order.
func EncodeWordList(entries []words.Entry) ([]byte, error) {
	if entries == nil {
		entries = []words.Entry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal word list: %w", err)
	}
	return b, nil
}

// DecodeWordList validates raw against the word list schema and decodes it.
func DecodeWordList(raw []byte) ([]words.Entry, error) {
	schema, err := wordListValidator()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWordList, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWordList, err)
	}

	var entries []words.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWordList, err)
	}
	return entries, nil
}

func wordListValidator() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(wordListSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse word list schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://word-list.json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
