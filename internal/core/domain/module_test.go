package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/artcache/internal/core/domain"
)

func TestModuleCacheKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "App_Web_ab12", "module:app_web_ab12"},
		{"case insensitive", "APP_WEB_AB12", "module:app_web_ab12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ModuleCacheKey(tt.in))
		})
	}
}

func TestModuleCacheKeyFromPath(t *testing.T) {
	assert.Equal(t, domain.ModuleCacheKey("App_Web_ab12"), domain.ModuleCacheKeyFromPath("/cache/App_Web_ab12.dll"))
	assert.Equal(t, domain.ModuleCacheKey("App_Web_ab12"), domain.ModuleCacheKeyFromPath("App_Web_ab12.dll"))
	assert.Equal(t, "App_Code", domain.ModuleNameFromPath("dir/App_Code.dll"))
	assert.True(t, domain.IsModuleMarkerKey(domain.Module{Name: "x"}.CacheKey()))
	assert.False(t, domain.IsModuleMarkerKey("page.aspx"))
}

func TestModule_BinaryPath(t *testing.T) {
	assert.Equal(t, "/cache/App_Web_ab12.dll", domain.Module{Name: "App_Web_ab12", Path: "/cache/App_Web_ab12.dll"}.BinaryPath())
	assert.Equal(t, "App_Web_ab12.dll", domain.Module{Name: "App_Web_ab12"}.BinaryPath())
}

func TestArtifact_Clone(t *testing.T) {
	a := &domain.Artifact{
		Inputs:  []string{"a.src"},
		Payload: []byte{1, 2},
		Module:  &domain.Module{Name: "App_Web_x"},
	}
	c := a.Clone()
	c.Inputs[0] = "b.src"
	c.Payload[0] = 9
	c.Module.Name = "other"

	assert.Equal(t, "a.src", a.Inputs[0])
	assert.Equal(t, byte(1), a.Payload[0])
	assert.Equal(t, "App_Web_x", a.Module.Name)
	assert.Nil(t, (*domain.Artifact)(nil).Clone())
}

func TestDeleteStatus_Gone(t *testing.T) {
	assert.True(t, domain.DeleteOK.Gone())
	assert.True(t, domain.DeleteNotFound.Gone())
	assert.False(t, domain.DeleteLocked.Gone())
}

func TestParseCategory(t *testing.T) {
	for _, c := range []domain.Category{
		domain.CategoryGeneric, domain.CategoryPage, domain.CategoryIndirectPage,
		domain.CategoryCode, domain.CategoryResource,
	} {
		got, ok := domain.ParseCategory(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}

	_, ok := domain.ParseCategory("unknown")
	assert.False(t, ok)
}
