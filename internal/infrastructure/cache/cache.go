// Package cache implementa ports.SessionCache en memoria con dgraph-io/ristretto.
package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/jhoicas/partner-portal/internal/application/ports"
)

var _ ports.SessionCache = (*Cache)(nil)

// DefaultMaxBytes tamaño máximo por defecto de la caché de sesiones.
const DefaultMaxBytes int64 = 8 << 20

// Cache caché de identidades por proceso. El coste de cada entrada es su tamaño en bytes.
type Cache struct {
	c *ristretto.Cache[string, []byte]
}

// New crea la caché. maxCostBytes <= 0 usa DefaultMaxBytes.
func New(maxCostBytes int64) (*Cache, error) {
	if maxCostBytes <= 0 {
		maxCostBytes = DefaultMaxBytes
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxCostBytes / 100 * 10,
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c}, nil
}

// Get devuelve el valor si existe y no venció.
func (c *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	val, found := c.c.Get(key)
	if !found {
		return nil, false, nil
	}
	return val, true, nil
}

// Set guarda value con ttl. Espera a que el buffer se aplique para que un Get
// inmediato vea el valor.
func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.c.SetWithTTL(key, value, int64(len(value)), ttl)
	c.c.Wait()
	return nil
}

// Delete elimina la entrada.
func (c *Cache) Delete(_ context.Context, key string) error {
	c.c.Del(key)
	return nil
}

// Close libera los goroutines internos de ristretto.
func (c *Cache) Close() {
	c.c.Close()
}
