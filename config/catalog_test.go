package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEnglishLoadsExpectedCodes(t *testing.T) {
	c := NewCatalog("countries-en.yaml")
	codes := c.ISOCodes()
	require.NoError(t, c.Err())
	assert.Contains(t, codes, "US")
	assert.Contains(t, codes, "ES")
	assert.Contains(t, codes, "AT")
	assert.Contains(t, codes, "AU")
}

func TestCatalogEnglishResolvesNameAndDial(t *testing.T) {
	c := NewCatalog("countries-en.yaml")
	require.NoError(t, c.Err())
	assert.Equal(t, "Spain", c.DisplayName("ES"))
	assert.Equal(t, "34", c.DialCode("es"))
}

func TestCatalogArabicResolvesNames(t *testing.T) {
	c := NewCatalog("countries-ar.yaml")
	require.NoError(t, c.Err())
	assert.Equal(t, "مصر", c.DisplayName("EG"))
	assert.Equal(t, "971", c.DialCode("AE"))
}

func TestCatalogUnknownAssetErrors(t *testing.T) {
	c := NewCatalog("does-not-exist.yaml")
	assert.Error(t, c.Err())
	assert.Nil(t, c.ISOCodes())
}

func TestLoadCLISettingsMissingFileIsNotAnError(t *testing.T) {
	settings, err := LoadCLISettings("/nonexistent/path/countrysearch.yaml")
	require.NoError(t, err)
	assert.Equal(t, CLISettings{}, settings)
}
