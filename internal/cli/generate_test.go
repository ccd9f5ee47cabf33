package cli

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

// setupContentTree builds a minimal division with two logos and returns the
// content root.
func setupContentTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	div := filepath.Join(root, "league", "s15", "div4")

	if err := os.MkdirAll(filepath.Join(div, "logos"), 0755); err != nil {
		t.Fatal(err)
	}
	slots := "1. Fancy Guys\n2. Fancy Girls\n"
	if err := os.WriteFile(filepath.Join(div, "Slots.txt"), []byte(slots), 0644); err != nil {
		t.Fatal(err)
	}

	colors := map[string]color.NRGBA{
		"1.png": {R: 200, G: 40, B: 40, A: 255},
		"2.png": {R: 40, G: 40, B: 200, A: 255},
	}
	for name, c := range colors {
		img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
		if err := imaging.Save(img, filepath.Join(div, "logos", name)); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestGenerateEndToEnd(t *testing.T) {
	root := setupContentTree(t)

	cmd := newTestCLI().RootCommand()
	cmd.SetArgs([]string{
		"generate", "league", "s15", "div4",
		"--content", root,
		"--no-cache", "--no-zip",
		"--font-size", "24",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	manifest := filepath.Join(root, "generated", "league-s15-div4", "Observer", "TeamInfo.csv")
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	if !strings.Contains(string(data), "FAGU") {
		t.Errorf("manifest should contain resolved tag FAGU, got:\n%s", data)
	}

	for _, icon := range []string{"1.png", "2.png"} {
		path := filepath.Join(root, "generated", "league-s15-div4", "Observer", "TeamIcon", icon)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected stamped icon %s: %v", path, err)
		}
	}
}

func TestGenerateZipArchive(t *testing.T) {
	root := setupContentTree(t)

	cmd := newTestCLI().RootCommand()
	cmd.SetArgs([]string{
		"generate", "league", "s15", "div4",
		"--content", root,
		"--no-cache",
		"--font-size", "24",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	zipPath := filepath.Join(root, "generated", "league-s15-div4", "league-s15-div4.zip")
	if _, err := os.Stat(zipPath); err != nil {
		t.Errorf("expected zip archive %s: %v", zipPath, err)
	}
}

func TestGenerateConfigFile(t *testing.T) {
	root := setupContentTree(t)

	cfgPath := filepath.Join(t.TempDir(), "observer.toml")
	cfg := "content_root = " + quoteTOML(root) + "\n\n[overlay]\nfont_size = 24.0\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newTestCLI().RootCommand()
	cmd.SetArgs([]string{
		"generate", "league", "s15", "div4",
		"--config", cfgPath,
		"--no-cache", "--no-zip",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate with config failed: %v", err)
	}

	manifest := filepath.Join(root, "generated", "league-s15-div4", "Observer", "TeamInfo.csv")
	if _, err := os.Stat(manifest); err != nil {
		t.Errorf("expected manifest %s: %v", manifest, err)
	}
}

func TestGenerateMissingDivision(t *testing.T) {
	cmd := newTestCLI().RootCommand()
	cmd.SetArgs([]string{
		"generate", "nope", "s1", "d1",
		"--content", t.TempDir(),
		"--no-cache",
	})

	if err := cmd.Execute(); err == nil {
		t.Error("generate against a missing division should fail")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "a", "b"); got != "a" {
		t.Errorf("firstNonEmpty = %q, want %q", got, "a")
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q, want empty", got)
	}
}

// quoteTOML escapes backslashes for Windows temp paths.
func quoteTOML(s string) string {
	return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
}
