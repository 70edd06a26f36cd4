package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

type IRegistry interface {
	// Get returns the catalog of a language, falling back to the default
	// language when the requested one cannot be loaded. Catalog.Code tells
	// which language is actually served.
	Get(ctx context.Context, code string) (*Catalog, error)
	Default() string
}

type Registry struct {
	loader      *Loader
	defaultCode string
	log         *logrus.Logger

	mu       sync.Mutex
	catalogs map[string]*Catalog
}

func NewRegistry(loader *Loader, defaultCode string, log *logrus.Logger) *Registry {
	if defaultCode == "" {
		defaultCode = DefaultLanguage
	}
	return &Registry{
		loader:      loader,
		defaultCode: defaultCode,
		log:         log,
		catalogs:    make(map[string]*Catalog),
	}
}

func (r *Registry) Default() string {
	return r.defaultCode
}

// Get serves cached catalogs. Unsupported codes fail; a language whose data
// fails to load falls back to the default language with a warning.
func (r *Registry) Get(ctx context.Context, code string) (*Catalog, error) {
	if _, ok := Lookup(code); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	c, err := r.load(ctx, code)
	if err == nil {
		return c, nil
	}
	if code == r.defaultCode || !errors.Is(err, ErrDataUnavailable) {
		return nil, err
	}

	if r.log != nil {
		r.log.WithFields(logrus.Fields{
			"language": code,
			"fallback": r.defaultCode,
			"error":    err.Error(),
		}).Warn("[catalog.Registry.Get] falling back to default language")
	}
	return r.load(ctx, r.defaultCode)
}

// Preload loads the given languages, returning the first error of the
// default language. Other failures are logged and left to lazy retries.
func (r *Registry) Preload(ctx context.Context, codes ...string) error {
	if _, err := r.load(ctx, r.defaultCode); err != nil {
		return err
	}
	for _, code := range codes {
		if _, err := r.load(ctx, code); err != nil && r.log != nil {
			r.log.WithFields(logrus.Fields{
				"language": code,
				"error":    err.Error(),
			}).Warn("[catalog.Registry.Preload] failed to load language")
		}
	}
	return nil
}

func (r *Registry) load(ctx context.Context, code string) (*Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.catalogs[code]; ok {
		return c, nil
	}
	c, err := r.loader.Load(ctx, code)
	if err != nil {
		return nil, err
	}
	r.catalogs[code] = c
	return c, nil
}
