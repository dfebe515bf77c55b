package locale

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewWithOverride(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "en", tr.Language())
	assert.Equal(t, "Install", tr.Get("action_install"))
	assert.Equal(t, "Install failed: boom", tr.Get("install_failed", "boom"))

	require.NoError(t, tr.SetLanguage("zh"))
	assert.Equal(t, "安装", tr.Get("action_install"))
	assert.Equal(t, "炉石传说目录: C:\\Hearthstone", tr.Get("game_dir", `C:\Hearthstone`))
}

func Test_UnknownOverrideFallsBackToLocale(t *testing.T) {
	tr, err := New("xx")
	require.NoError(t, err)
	assert.Contains(t, tr.Languages(), tr.Language())
}

func Test_Languages(t *testing.T) {
	tr, err := New("zh")
	require.NoError(t, err)
	assert.Equal(t, []string{"zh", "en"}, tr.Languages())
	assert.Equal(t, "English", tr.Display("en"))
	assert.Equal(t, "fr", tr.Display("fr"))
	assert.Error(t, tr.SetLanguage("fr"))
}

func Test_Match(t *testing.T) {
	tr, err := New("zh")
	require.NoError(t, err)
	assert.Equal(t, "en", tr.match("en-US"))
	assert.Equal(t, "zh", tr.match("zh-CN"))
	assert.Equal(t, "zh", tr.match("zh-TW"))
}

func Test_MissingKeyFallback(t *testing.T) {
	langs, err := loadLanguages(fstest.MapFS{
		"l/zh.yml": {Data: []byte("only_zh: 仅中文\nboth: 中\n")},
		"l/en.yml": {Data: []byte("both: en\n")},
	}, "l")
	require.NoError(t, err)

	tr := &Translator{langStrings: langs, language: "en"}
	assert.Equal(t, "en", tr.Get("both"))
	assert.Equal(t, "仅中文", tr.Get("only_zh"))
	assert.Equal(t, "nothing", tr.Get("nothing"))
}

func Test_LoadLanguagesNeedsDefault(t *testing.T) {
	_, err := loadLanguages(fstest.MapFS{
		"l/en.yml": {Data: []byte("a: b\n")},
	}, "l")
	assert.Error(t, err)

	_, err = loadLanguages(fstest.MapFS{
		"l/zh.yml": {Data: []byte("a: [unclosed\n")},
	}, "l")
	assert.Error(t, err)
}
