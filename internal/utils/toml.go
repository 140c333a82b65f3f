package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TOMLTable is a loosely typed TOML table, used to salvage what it can from
// a file that does not decode into its struct.
type TOMLTable map[string]any

// DecodeTOMLFile decodes path into v. Keys in the file that v has no field
// for are an error, so a misspelled option is never silently ignored.
func DecodeTOMLFile(path string, v any) error {
	md, err := toml.DecodeFile(path, v)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("decode %s: unknown keys %v", path, keys)
	}
	return nil
}

// DecodeTOMLTable decodes path without a target struct.
func DecodeTOMLTable(path string) (TOMLTable, error) {
	table := make(TOMLTable)
	if _, err := toml.DecodeFile(path, (*map[string]any)(&table)); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return table, nil
}

// EncodeTOMLFile writes v to path, replacing any existing file.
func EncodeTOMLFile(path string, v any) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := toml.NewEncoder(file).Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Table returns the sub-table under key.
func (t TOMLTable) Table(key string) (TOMLTable, bool) {
	sub, ok := t[key].(map[string]any)
	return TOMLTable(sub), ok
}

// Has reports whether key is set, whatever its type.
func (t TOMLTable) Has(key string) bool {
	_, ok := t[key]
	return ok
}

func (t TOMLTable) String(key string) (string, bool) {
	return lookup[string](t, key)
}

func (t TOMLTable) Bool(key string) (bool, bool) {
	return lookup[bool](t, key)
}

// Int returns an integer value. TOML integers decode as int64.
func (t TOMLTable) Int(key string) (int, bool) {
	v, ok := lookup[int64](t, key)
	return int(v), ok
}

func lookup[T any](t TOMLTable, key string) (T, bool) {
	v, ok := t[key].(T)
	return v, ok
}
