package core

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/JonMunkholm/exportparse/internal/schema"
)

// KindDefinition pairs a file kind's schema with its normalizer. Apply
// consumes resolved data rows, appends typed records to the accumulator,
// and returns warnings.
type KindDefinition struct {
	Spec  schema.Kind
	Apply func(rows [][]string, fields FieldIndex, acc *accumulator) []string
}

var (
	registry   []KindDefinition
	registryMu sync.RWMutex
)

// Register adds a kind definition to the registry. Registration order is
// preserved; it determines filename classification precedence. Panics if the
// key is already registered.
func Register(def KindDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	for _, existing := range registry {
		if existing.Spec.Key == def.Spec.Key {
			panic(fmt.Sprintf("kind already registered: %s", def.Spec.Key))
		}
	}

	registry = append(registry, def)
}

// Kinds returns all registered kind definitions in registration order.
func Kinds() []KindDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]KindDefinition, len(registry))
	copy(out, registry)
	return out
}

// KindByKey returns a kind definition by its stable key.
func KindByKey(key string) (KindDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, def := range registry {
		if def.Spec.Key == key {
			return def, true
		}
	}
	return KindDefinition{}, false
}

// classify matches a file path to a registered kind by case-insensitive
// substring of its base name.
func classify(name string) (KindDefinition, bool) {
	base := strings.ToLower(path.Base(name))

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, def := range registry {
		for _, substr := range def.Spec.Match {
			if strings.Contains(base, substr) {
				return def, true
			}
		}
	}
	return KindDefinition{}, false
}
