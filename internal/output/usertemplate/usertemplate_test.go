package usertemplate

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/output/outputtest"
)

func writeTemplate(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUserTemplatePlugin(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "colors.conf.tmpl", `{{ range slots . }}{{ ident (print .Slot) }}={{ hexNoHash .Color }}
{{ end }}`)

	outputtest.RunAllTests(t, New(path), outputtest.TestConfig{
		ExpectedName:  "template",
		ExpectedFiles: []string{"colors.conf"},
	})
}

func TestUserTemplatePlugin_Functions(t *testing.T) {
	dir := t.TempDir()
	path := writeTemplate(t, dir, "theme.txt.tmpl", strings.Join([]string{
		`bg={{ get . "default-background" | hex }}`,
		`text={{ get . "default-text" | rgb }}`,
		`border={{ get . "oldButton-border" | css }}`,
		`faded={{ get . "default-text" | withAlpha 0.5 | rgba }}`,
		`contrast={{ printf "%.2f" (contrast (get . "default-text") (get . "default-background")) }}`,
		`level={{ wcag (get . "default-text") (get . "default-background") }}`,
		`shades={{ len (ramp . "primary") }}`,
		`darker={{ get . "default-background" | shadeOf "darkest" | hex }}`,
		`var={{ cssVar "default-text" }}`,
		`has={{ has . "nope" }}`,
		`name={{ .ThemeName | toUpper }}`,
	}, "\n"))

	files, err := New(path).Generate(outputtest.ThemeData(t, 0))
	require.NoError(t, err)

	want := strings.Join([]string{
		"bg=#ffffff",
		"text=rgb(51, 51, 51)",
		"border=transparent",
		"faded=rgba(51, 51, 51, 0.502)",
		"contrast=12.63",
		"level=AAA",
		"shades=" + strconv.Itoa(colour.DefaultRampLength),
		"darker=#808080",
		"var=--default-text",
		"has=false",
		"name=TEST",
	}, "\n")
	assert.Equal(t, want, string(files["theme.txt"]))
}

func TestUserTemplatePlugin_Errors(t *testing.T) {
	dir := t.TempDir()

	missing := New(filepath.Join(dir, "missing.tmpl"))
	assert.Error(t, missing.Validate())

	bad := New(writeTemplate(t, dir, "bad.tmpl", `{{ get . "no-such-slot" }}`))
	_, err := bad.Generate(outputtest.ThemeData(t, 0))
	assert.ErrorContains(t, err, "no-such-slot")

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	a := writeTemplate(t, dir, "same.tmpl", "a")
	b := writeTemplate(t, sub, "same.tmpl", "b")
	_, err = New(a, b).Generate(outputtest.ThemeData(t, 0))
	assert.Error(t, err)

	files, err := New().Generate(outputtest.ThemeData(t, 0))
	require.NoError(t, err)
	assert.Empty(t, files)
}
