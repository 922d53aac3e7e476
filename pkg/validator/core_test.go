package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidNgugi/MiniRegex/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "color", Message: "must be a hex color"})
		assert.Equal(t, "validation failed: color: must be a hex color", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "color", Message: "must be a hex color"})
		errs.Add(validator.ValidationError{Field: "site", Message: "must be a valid URL"})

		msg := errs.Error()
		assert.Contains(t, msg, "color: must be a hex color")
		assert.Contains(t, msg, "site: must be a valid URL")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "first"})
	errs.Add(validator.ValidationError{Field: "email", Message: "second"})
	errs.Add(validator.ValidationError{Field: "zip", Message: "third"})

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"first", "second"}, errs.Get("email"))
	assert.Empty(t, errs.Get("name"))
	assert.Equal(t, []string{"email", "zip"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() (bool, error) { return true, nil }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() (bool, error) { return false, nil },
			Error: validator.ValidationError{Field: field, Message: "did not match"},
		}
	}

	t.Run("nil when every rule passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("aggregates failed matches", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)
		require.True(t, validator.IsValidationError(err))

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"a", "b"}, verrs.Fields())
	})

	t.Run("evaluation error aborts and is distinguishable", func(t *testing.T) {
		boom := errors.New("boom")
		called := false
		broken := validator.Rule{
			Check: func() (bool, error) { return false, boom },
			Error: validator.ValidationError{Field: "broken"},
		}
		after := validator.Rule{Check: func() (bool, error) {
			called = true
			return true, nil
		}}

		err := validator.Apply(fail("a"), broken, after)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrEvaluation)
		assert.ErrorIs(t, err, boom)
		assert.False(t, validator.IsValidationError(err))
		assert.Contains(t, err.Error(), `"broken"`)
		assert.False(t, called)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
}
