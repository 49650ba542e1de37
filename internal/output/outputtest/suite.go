// Package outputtest provides shared test utilities for output plugins.
package outputtest

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themer/internal/colour"
	"github.com/jmylchreest/themer/internal/output"
)

// ThemeData derives theme data from the default seeds at backgroundIndex.
func ThemeData(t *testing.T, backgroundIndex int) *colour.ThemeData {
	t.Helper()
	e, err := colour.NewEngine(colour.DefaultEngineOptions(), nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	data, err := e.NewThemeData(colour.DefaultSeeds(), backgroundIndex, "test")
	if err != nil {
		t.Fatalf("NewThemeData() error = %v", err)
	}
	return data
}

// DarkThemeData derives theme data from dark seeds.
func DarkThemeData(t *testing.T) *colour.ThemeData {
	t.Helper()
	e, err := colour.NewEngine(colour.DefaultEngineOptions(), nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	seeds := colour.Seeds{
		Primary:    colour.MustParse("#4cc2ff"),
		Background: colour.MustParse("#1b1a19"),
		Text:       colour.MustParse("#f3f2f1"),
	}
	data, err := e.NewThemeData(seeds, 0, "dark")
	if err != nil {
		t.Fatalf("NewThemeData() error = %v", err)
	}
	return data
}

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if p.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("DefaultOutputDir", func(t *testing.T) {
		if p.DefaultOutputDir() == "" {
			t.Error("DefaultOutputDir() should not be empty")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with light, dark and nil data.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(ThemeData(t, 0))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}
		for _, name := range expectedFiles {
			if len(files[name]) == 0 {
				t.Errorf("Generate() did not return %s", name)
			}
		}
	})

	t.Run("GenerateDark", func(t *testing.T) {
		files, err := p.Generate(DarkThemeData(t))
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(files) == 0 {
			t.Error("Generate() returned no files")
		}
	})

	t.Run("GenerateNil", func(t *testing.T) {
		if _, err := p.Generate(nil); err == nil {
			t.Error("Generate() with nil theme data should return error")
		}
	})
}

// TestFlags tests that the plugin registers its output directory flag.
func TestFlags(t *testing.T, p output.Plugin) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{Use: "test"}
		p.RegisterFlags(cmd)

		expectedFlag := p.Name() + ".output-dir"
		if cmd.Flags().Lookup(expectedFlag) == nil {
			t.Errorf("RegisterFlags() did not register %s flag", expectedFlag)
		}
	})
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName)
	TestGeneration(t, p, config.ExpectedFiles)
	TestFlags(t, p)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName  string   // Plugin name
	ExpectedFiles []string // Files that Generate() should return
}
