package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/spanviz/builder"
	"github.com/katalvlaran/spanviz/core"
	"github.com/katalvlaran/spanviz/mst"
)

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("config: invalid configuration")

// ValidationError lists every rejected field with an English message.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return ErrInvalid.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	translator    ut.Translator
)

// instance builds the shared validator with the English translations and the
// domain tags shape, algorithm and weights.
func instance() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		validate = validator.New()
		english := en.New()
		uni := ut.New(english, english)
		translator, _ = uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, translator)

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("mapstructure"); name != "" {
				return name
			}

			return f.Name
		})

		_ = validate.RegisterValidation("shape", func(fl validator.FieldLevel) bool {
			_, err := core.ParseShape(fl.Field().String())

			return err == nil
		})
		_ = validate.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			if name == mst.Both {
				return true
			}
			_, err := mst.Lookup(name)

			return err == nil
		})

		_ = validate.RegisterValidation("weights", func(fl validator.FieldLevel) bool {
			_, err := builder.WeightProfile(fl.Field().String())

			return err == nil
		})

		register := func(tag, text string) {
			_ = validate.RegisterTranslation(tag, translator,
				func(t ut.Translator) error { return t.Add(tag, text, true) },
				func(t ut.Translator, fe validator.FieldError) string {
					msg, _ := t.T(tag, fe.Field(), fmt.Sprint(fe.Value()))

					return msg
				})
		}
		register("shape", "{0} must be one of "+strings.Join(core.ShapeNames(), ", ")+", got {1}")
		register("algorithm", "{0} must be a catalog algorithm or "+mst.Both+", got {1}")
		register("weights", "{0} must be one of "+strings.Join(builder.WeightProfiles(), ", ")+", got {1}")
	})

	return validate, translator
}

// Validate checks cfg against its struct tags and returns a
// *ValidationError holding one translated message per failing field.
func Validate(cfg Config) error {
	v, trans := instance()
	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Problems: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Problems = append(out.Problems, fe.Translate(trans))
	}

	return out
}
