package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const maxBodyBytes = 1 << 20

// requestError is a client error carrying its HTTP status.
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string { return e.message }

func badRequest(format string, args ...any) error {
	return &requestError{status: http.StatusBadRequest, message: fmt.Sprintf(format, args...)}
}

type validation struct {
	validate   *validator.Validate
	translator ut.Translator
}

// validatorService builds the validator once: English messages, json tag
// names in field references.
var validatorService = sync.OnceValue(func() *validation {
	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	_ = entranslations.RegisterDefaultTranslations(v, translator)
	_ = v.RegisterTranslation("max", translator,
		func(t ut.Translator) error {
			return t.Add("max", "{0} must be at most {1} characters", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("max", fe.Field(), fe.Param())
			return msg
		},
	)
	return &validation{validate: v, translator: translator}
})

// normalizer is implemented by payloads that clean themselves up before
// validation.
type normalizer interface {
	normalize()
}

// decodeJSON reads one JSON object into T, rejecting unknown fields and
// trailing data, then validates it.
func decodeJSON[T any](r *http.Request) (T, error) {
	var dst T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dst, badRequest("empty body")
		}
		return dst, badRequest("invalid JSON: %v", err)
	}
	if dec.More() {
		return dst, badRequest("unexpected trailing data")
	}

	if n, ok := any(&dst).(normalizer); ok {
		n.normalize()
	}
	if err := validatorService().validate.Struct(dst); err != nil {
		return dst, badRequest("%s", validationMessage(err))
	}
	return dst, nil
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[0].Translate(validatorService().translator)
	}
	return err.Error()
}
