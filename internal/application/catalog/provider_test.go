package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/partner-portal/internal/application/catalog"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

func entries() []entity.CatalogEntry {
	return []entity.CatalogEntry{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", IsFlagship: true},
		{ID: "c", Name: "C"},
	}
}

func TestList_OrdenDeDeclaracion(t *testing.T) {
	p, err := catalog.NewProvider(entries(), nil)
	require.NoError(t, err)

	got := p.List()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)

	got[0].Name = "mutado"
	assert.Equal(t, "A", p.List()[0].Name, "List devuelve una copia")
}

func TestFind(t *testing.T) {
	p, err := catalog.NewProvider(entries(), nil)
	require.NoError(t, err)

	e, err := p.Find("b")
	require.NoError(t, err)
	assert.True(t, e.IsFlagship)

	_, err = p.Find("unknown-id")
	assert.True(t, errors.Is(err, catalog.ErrEntryNotFound))
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestNewProvider_IDDuplicado(t *testing.T) {
	_, err := catalog.NewProvider(append(entries(), entity.CatalogEntry{ID: "a"}), nil)
	assert.Error(t, err)
}
