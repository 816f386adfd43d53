package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// validatorSvc holds the request validator and its English translator.
type validatorSvc struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *validatorSvc
)

// getValidator returns the validator singleton, building it on first use.
// Messages name fields by their json tag.
func getValidator() *validatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		vSvc = &validatorSvc{validate: v, trans: trans}
	})
	return vSvc
}

// errBodyTooLarge is returned by decodeJSON when the body exceeds the limit
// set by the max body size middleware.
var errBodyTooLarge = errors.New("request body too large")

// decodeJSON decodes the request body into T, rejecting unknown fields and
// trailing data, then validates it. Errors carry a message safe to return
// to the client.
func decodeJSON[T any](r *http.Request) (T, error) {
	var zero, dst T

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return zero, errBodyTooLarge
		case errors.Is(err, io.EOF):
			return zero, errors.New("request body is required")
		}
		return zero, fmt.Errorf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, errors.New("unexpected trailing data")
	}

	if err := getValidator().validate.Struct(dst); err != nil {
		return zero, errors.New(validationMessage(err))
	}
	return dst, nil
}

// validationMessage returns the translated message of the first failing field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Translate(getValidator().trans)
	}
	return err.Error()
}

// bindBody decodes and validates the body, writing the error response itself
// when it fails. ok is false when the handler should return.
func bindBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	body, err := decodeJSON[T](r)
	if err != nil {
		if errors.Is(err, errBodyTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, err.Error())
		} else {
			badRequest(w, err.Error())
		}
		return body, false
	}
	return body, true
}

// pathUUID binds a UUID path parameter the way generated oapi-codegen servers do.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		badRequest(w, fmt.Sprintf("invalid %s: must be a UUID", name))
		return uuid.UUID{}, false
	}
	return id, true
}

// queryParam binds an optional form-style query parameter into dest.
func queryParam(w http.ResponseWriter, r *http.Request, name string, dest any) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		badRequest(w, fmt.Sprintf("invalid query parameter %s", name))
		return false
	}
	return true
}
