package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/artcache/internal/app"
	_ "go.trai.ch/artcache/internal/wiring"
)

// TestGraftDependencies checks that every declared dependency is used and every
// used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers the dependency ID from the package of the type passed to
	// Dep[T]. Loggers, loaders and tracers are all requested through ports types, so the
	// analysis cannot tell them apart.
	t.Skip("graft static analysis cannot resolve nodes exposed through the shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestComponentsResolve(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	assert.NotNil(t, components.App)
	assert.NotNil(t, components.Logger)
}
