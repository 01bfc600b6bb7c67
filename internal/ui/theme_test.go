package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestHeadlinesTheme_Colors(t *testing.T) {
	dark := NewHeadlinesTheme(true, nil)
	light := NewHeadlinesTheme(false, nil)

	assert.Equal(t, DarkTextColor, dark.Color(theme.ColorNameForeground, theme.VariantLight))
	assert.Equal(t, DarkLinkColor, dark.Color(theme.ColorNameHyperlink, theme.VariantLight))
	assert.Equal(t, LightTextColor, light.Color(theme.ColorNameForeground, theme.VariantDark))
	assert.Equal(t, LightLinkColor, light.Color(theme.ColorNameHyperlink, theme.VariantDark))

	// Other colours follow the forced variant, not the requested one
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestHeadlinesTheme_Font(t *testing.T) {
	font := fyne.NewStaticResource("custom.ttf", []byte("ttf"))
	th := NewHeadlinesTheme(false, font)

	assert.Equal(t, font, th.Font(fyne.TextStyle{}))
	assert.Equal(t, font, th.Font(fyne.TextStyle{Bold: true}))
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true}), th.Font(fyne.TextStyle{Monospace: true}))

	plain := NewHeadlinesTheme(false, nil)
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{}), plain.Font(fyne.TextStyle{}))
}

func TestHeadlinesTheme_Size(t *testing.T) {
	th := NewHeadlinesTheme(false, nil)
	assert.Equal(t, Padding, th.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameText), th.Size(theme.SizeNameText))
}

func TestLoadFontResource(t *testing.T) {
	res, err := LoadFontResource("")
	assert.NoError(t, err)
	assert.Nil(t, res)

	_, err = LoadFontResource("/nonexistent/font.ttf")
	assert.Error(t, err)
}
