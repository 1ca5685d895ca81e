package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Catalog manages a collection of tools with thread-safe operations.
// Tools are keyed by their lower-cased ToolInfo().Name, so lookups are
// case-insensitive.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tools: make(map[string]GenericTool)}
}

// NewCatalogWithTools creates a new catalog pre-populated with the given tools.
// Tool names are taken from each tool's ToolInfo().Name.
func NewCatalogWithTools(tools ...GenericTool) *Catalog {
	catalog := NewCatalog()
	catalog.AddTools(tools...)
	return catalog
}

// AddTools adds multiple tools to the catalog.
// Tool names are extracted from each tool's ToolInfo().Name and stored in
// lowercase. If a tool with the same name already exists, it is replaced.
func (c *Catalog) AddTools(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[strings.ToLower(t.ToolInfo().Name)] = t
	}
}

// Get retrieves a tool by name (case-insensitive).
// Returns the tool and true if found, nil and false otherwise.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, exists := c.tools[strings.ToLower(name)]
	return t, exists
}

// Has reports whether a tool named name is registered.
func (c *Catalog) Has(name string) bool {
	_, exists := c.Get(name)
	return exists
}

// Tools returns a copy of the registry keyed by lower-cased name.
// Changing the returned map does not affect the catalog.
func (c *Catalog) Tools() map[string]GenericTool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]GenericTool, len(c.tools))
	for name, t := range c.tools {
		out[name] = t
	}
	return out
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.tools))
	for name := range c.tools {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// Execute runs the named tool on a JSON argument string and returns its
// Outcome. An unknown name is reported as a tool_not_found outcome rather
// than an error, so the HTTP API maps every result the same way.
func (c *Catalog) Execute(ctx context.Context, name string, inputJSON string) Outcome {
	t, ok := c.Get(name)
	if !ok {
		return Failure(KindToolNotFound, fmt.Sprintf("tool %q not found", name))
	}
	return t.Execute(ctx, inputJSON)
}

// Invoke marshals input to JSON and runs the named tool through
// [Catalog.Execute]. Handlers call it with the tool's typed input struct.
// An input that cannot be marshaled yields an invalid_arguments outcome.
func (c *Catalog) Invoke(ctx context.Context, name string, input any) Outcome {
	encoded, err := json.Marshal(input)
	if err != nil {
		return Failure(KindInvalidArguments, fmt.Sprintf("encode arguments: %v", err))
	}
	return c.Execute(ctx, name, string(encoded))
}
