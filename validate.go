package siteconf

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their wire keys (editPost.url, not EditPost.URL).
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("html_lang", isHTMLLang); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(validateEditPost, EditPost{})
	return v
}

// isHTMLLang accepts an empty value or a well-formed BCP 47 tag.
func isHTMLLang(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := language.Parse(s)
	return err == nil
}

func validateEditPost(sl validator.StructLevel) {
	ep := sl.Current().Interface().(EditPost)
	if ep.Enabled && strings.TrimSpace(ep.URL) == "" {
		sl.ReportError(ep.URL, "url", "URL", "required_if", "enabled")
	}
}

// FieldError describes one field that failed validation.
type FieldError struct {
	Field string `json:"field"` // wire key, e.g. "editPost.url"
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
	Value string `json:"value"`
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s: failed %s=%s (got %q)", f.Field, f.Rule, f.Param, f.Value)
	}
	return fmt.Sprintf("%s: failed %s (got %q)", f.Field, f.Rule, f.Value)
}

// ValidationError lists every field of a Settings record that failed validation.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "siteconf: invalid settings: " + strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validate checks s against the documented constraints: URLs for website,
// profile and editPost.url, the dir enum, non-negative counts, an IANA
// timezone and an optional BCP 47 lang. The record itself never calls this.
func Validate(s Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("siteconf: validate: %w", err)
	}
	ve := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fmt.Sprint(fe.Value()),
		})
	}
	return ve
}

// fieldPath drops the struct type name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
