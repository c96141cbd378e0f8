package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	pkgstrings "github.com/klwxsrx/tagabukid-property/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}

	return val
}

// LoadDotEnv fills the process environment from the given files (".env" by default).
// Variables that are already set are not overridden, missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

func Parse[T pkgstrings.SupportedParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("env %s with type %T not found", key, blank)
	}

	return parseValue[T](key, str)
}

func ParseOptional[T pkgstrings.SupportedParsingTypes](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(str) == "" {
		return nil, nil
	}

	value, err := parseValue[T](key, str)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func ParseWithDefault[T pkgstrings.SupportedParsingTypes](key string, defaultValue T) (T, error) {
	value, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if value == nil {
		return defaultValue, nil
	}

	return *value, nil
}

func parseValue[T pkgstrings.SupportedParsingTypes](key, str string) (T, error) {
	value, err := pkgstrings.ParseTypedValue[T](strings.TrimSpace(str))
	if err != nil {
		return value, fmt.Errorf("env %s with type %T has invalid value: %w", key, value, err)
	}

	return value, nil
}
