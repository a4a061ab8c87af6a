package labels

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed label_schema.cue
var labelSchema string

// requiredFields are checked on every merged record, in this order.
var requiredFields = []string{"name", "color"}

// labelValidator holds the compiled #Label schema. A cue.Context is not safe
// for concurrent use, so checks are serialized.
type labelValidator struct {
	mu     sync.Mutex
	ctx    *cue.Context
	schema cue.Value
}

var loadValidator = sync.OnceValues(func() (*labelValidator, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(labelSchema, cue.Filename("label_schema.cue"))
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("internal error: failed to compile label schema: %w", err)
	}
	return &labelValidator{
		ctx:    ctx,
		schema: schemaValue.LookupPath(cue.ParsePath("#Label")),
	}, nil
})

// Validate checks labels in order and returns a *ValidationError for the first
// one lacking a truthy name or color. Invalid records are reported, never
// dropped; other fields are not inspected.
func Validate(labels []Label) error {
	v, err := loadValidator()
	if err != nil {
		return err
	}

	for _, label := range labels {
		if err := v.check(label); err != nil {
			return &ValidationError{Label: label, Err: err}
		}
	}
	return nil
}

func (v *labelValidator) check(label Label) error {
	required := make(map[string]json.RawMessage, len(requiredFields))
	for _, field := range requiredFields {
		raw, ok := label.Field(field)
		if !ok {
			return fmt.Errorf("%s is missing", field)
		}
		required[field] = raw
	}
	data, err := json.Marshal(required)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	value := v.ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return err
	}
	return v.schema.Unify(value).Validate(cue.Concrete(true))
}
