package openapi

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/swaggo/swag"
)

// Source produces the base API description the builder starts from.
type Source interface {
	ReadDoc() (string, error)
}

// SwagSource reads a document registered with the swag registry.
type SwagSource struct {
	InstanceName string
}

func (s SwagSource) ReadDoc() (string, error) {
	return swag.ReadDoc(s.InstanceName)
}

// Builder merges the hand-authored schemas and paths into the base document
// and caches the result. Construction happens at most once successfully;
// a failed attempt leaves the builder unbuilt.
type Builder struct {
	source    Source
	serverURL string

	mu    sync.Mutex
	built atomic.Pointer[[]byte]
}

func NewBuilder(source Source, serverURL string) *Builder {
	return &Builder{source: source, serverURL: serverURL}
}

// JSON returns the encoded document. The returned slice is shared and must
// not be modified.
func (b *Builder) JSON() ([]byte, error) {
	return b.load()
}

// Document returns a copy of the merged document.
func (b *Builder) Document() (*Document, error) {
	raw, err := b.load()
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("copy document: %w", err)
	}
	return &doc, nil
}

func (b *Builder) load() ([]byte, error) {
	if raw := b.built.Load(); raw != nil {
		return *raw, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if raw := b.built.Load(); raw != nil {
		return *raw, nil
	}

	doc, err := b.build()
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	b.built.Store(&raw)
	return raw, nil
}

func (b *Builder) build() (*Document, error) {
	base, err := b.source.ReadDoc()
	if err != nil {
		return nil, fmt.Errorf("read base document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(base), &doc); err != nil {
		return nil, fmt.Errorf("decode base document: %w", err)
	}

	doc.Servers = []Server{{URL: b.serverURL}}

	if doc.Components == nil {
		doc.Components = &Components{}
	}
	if doc.Components.Schemas == nil {
		doc.Components.Schemas = make(map[string]*Schema)
	}
	if doc.Paths == nil {
		doc.Paths = make(Paths)
	}

	// The authored sets are exhaustive: overwrite matching entries and drop
	// whatever else the generator produced.
	doc.Components.Schemas = overlay(doc.Components.Schemas, componentSchemas())
	doc.Paths = overlay(doc.Paths, documentedPaths())

	return &doc, nil
}

func overlay[V any](dst, src map[string]V) map[string]V {
	for k, v := range src {
		dst[k] = v
	}
	for k := range dst {
		if _, ok := src[k]; !ok {
			delete(dst, k)
		}
	}
	return dst
}
