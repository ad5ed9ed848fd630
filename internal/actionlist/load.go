// SPDX-License-Identifier: AGPL-3.0-or-later
package actionlist

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnreadable is returned when the settings resource is missing or cannot be read.
	ErrUnreadable = errors.New("settings unreadable")
	// ErrInvalid is returned when the settings resource is not a valid action list document.
	ErrInvalid = errors.New("settings invalid")
	// ErrEmpty is returned when the action list has no records.
	ErrEmpty = errors.New("action list is empty, nothing to do")
	// ErrNoneEnabled is returned when no record in the list is enabled.
	ErrNoneEnabled = errors.New("no enabled actions in list")
)

//go:embed settings.schema.json
var schemaSource string

var settingsSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("settings.schema.json", strings.NewReader(schemaSource)); err != nil {
		return nil, err
	}
	return c.Compile("settings.schema.json")
})

type settingsFile struct {
	Actions []struct {
		Name    string `yaml:"name"`
		Enabled *bool  `yaml:"enabled"`
	} `yaml:"actions"`
}

// Load reads the settings resource at path and returns its action list.
// JSON documents are accepted as well as YAML.
func Load(path string) (List, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return Parse(data)
}

// Parse decodes and validates a settings document.
func Parse(data []byte) (List, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrInvalid, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalid)
	}

	// The validator wants JSON-shaped values, so round-trip through encoding/json.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	schema, err := settingsSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling settings schema: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var f settingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrInvalid, err)
	}
	if len(f.Actions) == 0 {
		return nil, ErrEmpty
	}

	list := make(List, 0, len(f.Actions))
	for _, a := range f.Actions {
		enabled := true
		if a.Enabled != nil {
			enabled = *a.Enabled
		}
		list = append(list, Entry{Name: a.Name, Enabled: enabled})
	}
	return list, nil
}
