package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresDeputados(t *testing.T) {
	_, err := NewServer(&Ports{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDeputadosService)
}

func TestNewServer_OptionalPortsMayBeNil(t *testing.T) {
	server, err := NewServer(&Ports{Deputados: &mockDeputadosService{}})

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestPorts_Validate(t *testing.T) {
	t.Run("complete ports pass", func(t *testing.T) {
		p := &Ports{
			Deputados:   &mockDeputadosService{},
			Budget:      &mockBudgetService{},
			Legislative: &mockLegislativeService{},
		}
		assert.NoError(t, p.Validate())
	})

	t.Run("missing deputados fails", func(t *testing.T) {
		p := &Ports{Budget: &mockBudgetService{}}
		assert.ErrorIs(t, p.Validate(), ErrMissingDeputadosService)
	})
}
