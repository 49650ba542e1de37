package template

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"theme.css.tmpl":    {Data: []byte("embedded {{ .Name }}\n")},
		"nested/extra.tmpl": {Data: []byte("extra\n")},
		"README.md":         {Data: []byte("not a template\n")},
	}
}

func TestLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("css", testFS()).WithCustomBase(tmpDir)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("theme.css.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fromCustom {
			t.Error("expected embedded template, got custom")
		}
		if string(content) != "embedded {{ .Name }}\n" {
			t.Errorf("unexpected content %q", content)
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "css", "theme.css.tmpl")
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err != nil {
			t.Fatalf("failed to create custom dir: %v", err)
		}
		if err := os.WriteFile(customPath, []byte("custom\n"), 0o644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}

		content, fromCustom, err := loader.Load("theme.css.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fromCustom {
			t.Error("expected custom template, got embedded")
		}
		if string(content) != "custom\n" {
			t.Errorf("unexpected content %q", content)
		}
		if !loader.HasCustomTemplate("theme.css.tmpl") {
			t.Error("HasCustomTemplate() = false, want true")
		}
	})

	t.Run("missing template", func(t *testing.T) {
		if _, _, err := loader.Load("missing.tmpl"); err == nil {
			t.Error("expected error for missing template")
		}
	})
}

func TestLoader_ListEmbeddedTemplates(t *testing.T) {
	loader := New("css", testFS())
	templates, err := loader.ListEmbeddedTemplates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("got %d templates, want 2: %v", len(templates), templates)
	}
	if templates[0] != "nested/extra.tmpl" || templates[1] != "theme.css.tmpl" {
		t.Errorf("unexpected templates %v", templates)
	}
}

func TestLoader_DumpTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("css", testFS()).WithCustomBase(tmpDir)

	path, err := loader.DumpTemplate("nested/extra.tmpl", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(tmpDir, "css", "nested", "extra.tmpl") {
		t.Errorf("unexpected path %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dumped template missing: %v", err)
	}

	if _, err := loader.DumpTemplate("nested/extra.tmpl", false); err == nil {
		t.Error("expected error when override exists without force")
	}
	if _, err := loader.DumpTemplate("nested/extra.tmpl", true); err != nil {
		t.Errorf("force dump failed: %v", err)
	}
	if _, err := loader.DumpTemplate("missing.tmpl", true); err == nil {
		t.Error("expected error for missing embedded template")
	}
}
