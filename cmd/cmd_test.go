package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func Test_filePrepender(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"root", "docs/domaindraw.md", "permalink: /"},
		{"child", "docs/domaindraw_draw.md", "parent: domaindraw"},
		{"unknown", "docs/domaindraw_docs.md", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filePrepender(tt.filename)
			if !strings.Contains(got, tt.want) {
				t.Errorf("filePrepender() = %v, want it to contain %v", got, tt.want)
			}
		})
	}
}

func Test_linkHandler(t *testing.T) {
	if got := linkHandler("domaindraw.md"); got != "/" {
		t.Errorf("linkHandler() = %v, want /", got)
	}
	if got := linkHandler("domaindraw_collate.md"); got != "domaindraw_collate" {
		t.Errorf("linkHandler() = %v, want domaindraw_collate", got)
	}
}

func Test_makeDocs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	if err := makeDocs(dir); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"domaindraw.md", "domaindraw_draw.md", "domaindraw_collate.md", "domaindraw_palettes.md"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(b), "---\n") {
			t.Errorf("%s is missing its front matter", name)
		}
	}
}

func Test_commands(t *testing.T) {
	for _, name := range []string{"draw", "render", "collate", "suggest", "palettes", "colours"} {
		c, _, err := RootCmd.Find([]string{name})
		if err != nil {
			t.Errorf("failed to find command %s: %v", name, err)
			continue
		}
		if c == RootCmd {
			t.Errorf("%s resolved to the root command", name)
		}
	}

	for _, flag := range []string{"in", "out", "style", "palette", "palette-file", "fixed", "svg", "no-thumbs"} {
		if drawCmd.Flags().Lookup(flag) == nil {
			t.Errorf("draw is missing --%s", flag)
		}
	}
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) string {
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		// flags keep their values between runs
		RootCmd.PersistentFlags().Set("settings", "")
	})

	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func Test_collateCmd_environment(t *testing.T) {
	in, _ := filepath.Abs(filepath.Join("..", "test", "input", "domains.txt"))
	t.Setenv("DOMAINDRAW_IN", in)

	out := execute(t, "collate")
	if !strings.Contains(out, "records: 5") {
		t.Errorf("collate didn't read DOMAINDRAW_IN, got:\n%s", out)
	}
}

func Test_collateCmd_settings(t *testing.T) {
	in, _ := filepath.Abs(filepath.Join("..", "test", "input", "domains.txt"))
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(settings, []byte("in: "+in+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out := execute(t, "collate", "--settings", settings)
	if !strings.Contains(out, "records: 5") {
		t.Errorf("collate didn't read the settings file, got:\n%s", out)
	}
}

func Test_palettesCmd_environment(t *testing.T) {
	file := filepath.Join(t.TempDir(), "palettes.yaml")
	if err := os.WriteFile(file, []byte("palettes:\n  mine:\n    DomX: tomato\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOMAINDRAW_PALETTE_FILE", file)

	out := execute(t, "palettes")
	if !strings.Contains(out, "mine") {
		t.Errorf("palettes didn't read DOMAINDRAW_PALETTE_FILE, got:\n%s", out)
	}
}
