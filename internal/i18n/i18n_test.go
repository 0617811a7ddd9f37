package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edu-admin-client/pkg/kvstore"
)

func testTables() Tables {
	return Tables{
		"en": {
			"a": map[string]interface{}{"b": "Hello {name}", "c": "Only English"},
			"x": "Top level",
		},
		"ar": {
			"a": map[string]interface{}{"b": "مرحبا {name}"},
		},
	}
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	tables := testTables()
	for _, lang := range []string{"en", "ar", "fr", ""} {
		for _, key := range []string{"missing", "a.missing", "a.b.c", "", "x.y"} {
			assert.Equal(t, key, Translate(tables, key, lang, nil), "lang=%s key=%s", lang, key)
			assert.Equal(t, key, Translate(tables, key, lang, map[string]string{"name": "X"}))
		}
	}
}

func TestTranslateInterpolation(t *testing.T) {
	tables := testTables()
	assert.Equal(t, "Hello X", Translate(tables, "a.b", "en", map[string]string{"name": "X"}))
	assert.Equal(t, "Hello {name}", Translate(tables, "a.b", "en", map[string]string{"other": "Y"}))
	assert.Equal(t, "Hello {name}", Translate(tables, "a.b", "en", nil))
	assert.Equal(t, "مرحبا X", Translate(tables, "a.b", "ar", map[string]string{"name": "X"}))
}

func TestTranslateFallsBackToDefaultLanguage(t *testing.T) {
	tables := testTables()
	assert.Equal(t, "Only English", Translate(tables, "a.c", "ar", nil))
	assert.Equal(t, "Top level", Translate(tables, "x", "fr", nil))
}

func TestTranslateNonLeafIsMiss(t *testing.T) {
	assert.Equal(t, "a", Translate(testTables(), "a", "en", nil))
}

func TestBundledTables(t *testing.T) {
	tables, err := LoadTables()
	require.NoError(t, err)
	assert.Equal(t, "Save", Translate(tables, "common.save", English, nil))
	assert.Equal(t, "حفظ", Translate(tables, "common.save", Arabic, nil))
	assert.Equal(t, "Welcome back, Amina", Translate(tables, "auth.welcome", English, map[string]string{"name": "Amina"}))
	assert.Equal(t, "Mark as paid", Translate(tables, "salaries.mark_paid", Arabic, nil))
}

func TestTranslatorPersistsLanguage(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	tr, err := NewTranslator(ctx, store, "", nil)
	require.NoError(t, err)
	assert.Equal(t, English, tr.Language())
	assert.Equal(t, "ltr", tr.Direction())
	assert.False(t, tr.IsRTL())

	require.NoError(t, tr.SetLanguage(ctx, "AR"))
	assert.True(t, tr.IsRTL())
	assert.Equal(t, "rtl", tr.Direction())
	assert.Equal(t, "الطلاب", tr.T("nav.students", nil))

	saved, err := store.Get(ctx, kvstore.KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, Arabic, saved)

	restored, err := NewTranslator(ctx, store, English, nil)
	require.NoError(t, err)
	assert.Equal(t, Arabic, restored.Language())

	assert.Error(t, tr.SetLanguage(ctx, "fr"))
	assert.Equal(t, Arabic, tr.Language())
}

func TestTranslatorIgnoresUnsupportedPersistedValue(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, kvstore.KeyLanguage, "de"))

	tr, err := NewTranslator(ctx, store, Arabic, nil)
	require.NoError(t, err)
	assert.Equal(t, Arabic, tr.Language())
}

func TestTranslatorFormatting(t *testing.T) {
	tr, err := NewTranslator(context.Background(), nil, English, nil)
	require.NoError(t, err)

	assert.Equal(t, "1,234.50", tr.FormatNumber(1234.5, 2))
	assert.Equal(t, "$1,234.50", tr.FormatCurrency(1234.5, "usd"))
	assert.Equal(t, "1,234.50 XYZ", tr.FormatCurrency(1234.5, "XYZ"))

	require.NoError(t, tr.SetLanguage(context.Background(), Arabic))
	assert.NotEmpty(t, tr.FormatNumber(1234.5, 2))
	assert.NotEmpty(t, tr.FormatCurrency(10, "EGP"))
}
