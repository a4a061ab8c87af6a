package labels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	labels := []Label{
		label(`{"name":"bug","color":"d73a4a"}`),
		label(`{"name":"type: feature","color":"a2eeef","description":"New feature","replaces":["enhancement"]}`),
		// Any truthy value counts as present; types are not checked.
		label(`{"name":"numeric","color":123}`),
		label(`{"name":"object","color":{"hex":"fff"}}`),
		label(`{"name":"list","color":[]}`),
		label(`{"name":true,"color":-1.5}`),
		label(`{"name":"blank description","color":"fff","description":"","extra":null}`),
	}
	assert.NoError(t, Validate(labels))
}

func TestValidate_Empty(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate([]Label{}))
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"empty color", `{"name":"bug","color":""}`},
		{"missing color", `{"name":"bug"}`},
		{"empty name", `{"name":"","color":"d73a4a"}`},
		{"missing name", `{"color":"d73a4a"}`},
		{"null color", `{"name":"bug","color":null}`},
		{"false color", `{"name":"bug","color":false}`},
		{"zero color", `{"name":"bug","color":0}`},
		{"float zero name", `{"name":0.0,"color":"d73a4a"}`},
		{"not an object", `"bug"`},
		{"null record", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := label(tt.record)
			labels := []Label{label(`{"name":"ok","color":"ffffff"}`), bad}

			err := Validate(labels)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, bad.String(), vErr.Label.String())
			assert.Contains(t, err.Error(), "invalid label (missing name/color): "+bad.String())
		})
	}
}

func TestValidate_EchoesFullRecord(t *testing.T) {
	err := Validate([]Label{label(`{"name":"bug","color":"","default":true,"note":"<x>"}`)})
	require.Error(t, err)
	assert.Equal(t, `invalid label (missing name/color): {"name":"bug","color":"","default":true,"note":"<x>"}`, err.Error())
}

func TestValidate_ReportsFirstViolation(t *testing.T) {
	labels := []Label{
		label(`{"name":"first","color":""}`),
		label(`{"name":"","color":"000000"}`),
	}

	var vErr *ValidationError
	require.ErrorAs(t, Validate(labels), &vErr)
	assert.Equal(t, "first", vErr.Label.Name())
}

func TestValidate_WhitespaceIsPresent(t *testing.T) {
	// Only empty values are rejected; color format is opaque.
	assert.NoError(t, Validate([]Label{label(`{"name":" ","color":"not-a-hex"}`)}))
}

func TestValidate_RepeatedCalls(t *testing.T) {
	labels := []Label{label(`{"name":"bug","color":"d73a4a"}`)}
	for i := 0; i < 3; i++ {
		require.NoError(t, Validate(labels))
	}

	v1, err := loadValidator()
	require.NoError(t, err)
	v2, err := loadValidator()
	require.NoError(t, err)
	assert.Same(t, v1, v2)
}
