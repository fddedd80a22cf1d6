package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranslations(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "translations.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAndTranslate(t *testing.T) {
	path := writeTranslations(t, `{
		"English": {"login_required": "Please log in first"},
		"Hindi":   {"login_required": "कृपया पहले लॉग इन करें"}
	}`)

	tr, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Please log in first", tr.T("login_required", "English"))
	assert.Equal(t, "कृपया पहले लॉग इन करें", tr.T("login_required", "Hindi"))
}

func TestMissingKeyEchoesKey(t *testing.T) {
	path := writeTranslations(t, `{"English": {}}`)
	tr, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "no_such_key", tr.T("no_such_key", "English"))
	assert.Equal(t, "login_required", tr.T("login_required", "Klingon"))
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeTranslations(t, `{"English": "not a table"}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestEmptyTranslatorEchoesEverything(t *testing.T) {
	tr := Empty()
	assert.Equal(t, "anything", tr.T("anything", "English"))
}
