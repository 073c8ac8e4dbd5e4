package blogimpl

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/orgball2608/crypto-blog/internal/domain"
	"github.com/orgball2608/crypto-blog/pkg/errors"
)

var requiredMessages = map[string]string{
	domain.FieldTitle:  "Title is required",
	domain.FieldBody:   "Body is required",
	domain.FieldAuthor: "Author is required",
}

// newValidator reports fields under their form names rather than Go names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateForm returns nil when the form can be submitted.
func (b *BlogImpl) validateForm(form domain.PostForm) domain.FieldErrors {
	err := b.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		b.Logger.Error("Post form could not be validated", "error", err)
		return domain.FieldErrors{"": err.Error()}
	}

	out := make(domain.FieldErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		if msg, ok := requiredMessages[fe.Field()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
