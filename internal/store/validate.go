package store

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

var schemaLoader = struct {
	once   sync.Once
	ctx    *cue.Context
	schema cue.Value
	err    error
}{}

// validateDocument checks a raw JSON document against the embedded CUE
// schema. JSON is a subset of CUE, so the document compiles directly and
// unification with the schema surfaces every constraint violation.
func validateDocument(raw []byte) error {
	schemaLoader.once.Do(func() {
		schemaLoader.ctx = cuecontext.New()
		schemaLoader.schema = schemaLoader.ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
		schemaLoader.err = schemaLoader.schema.Err()
	})
	if schemaLoader.err != nil {
		return fmt.Errorf("compile state schema: %w", schemaLoader.err)
	}

	data := schemaLoader.ctx.CompileBytes(raw, cue.Filename("state.json"))
	if err := data.Err(); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := schemaLoader.schema.Unify(data).Validate(); err != nil {
		return err
	}
	return nil
}
