package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/klwxsrx/tagabukid-property/pkg/strings"
)

type DataExtractor[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := extractor(r)
	if err != nil {
		return nil
	}

	return &result
}

func QueryParameter[T strings.SupportedParsingTypes](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValue[T](value)
	}
}

func Header[T strings.SupportedParsingTypes](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.Header.Get(key)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValue[T](value)
	}
}

func CookieValue[T strings.SupportedParsingTypes](name string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			var result T
			return result, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
		}

		return parseTypedValue[T](cookie.Value)
	}
}

// FormBody decodes an url-encoded form with decode, fields are read from the parsed post form.
func FormBody[T any](decode func(get func(key string) string) T) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		if err := r.ParseForm(); err != nil {
			var result T
			return result, fmt.Errorf("%w: parse form: %w", ErrParsingError, err)
		}

		return decode(r.PostForm.Get), nil
	}
}

func parseTypedValue[T strings.SupportedParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrParsingError, err)
	}

	return v, nil
}
