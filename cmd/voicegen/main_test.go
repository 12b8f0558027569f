package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testPayload = `{
  "voices": [
    {"languageCodes": ["en-AU"], "name": "en-AU-Standard-A", "ssmlGender": "FEMALE", "naturalSampleRateHertz": 24000},
    {"languageCodes": ["en-GB"], "name": "en-GB-Neural2-A", "ssmlGender": "FEMALE", "naturalSampleRateHertz": 24000},
    {"languageCodes": ["en-US"], "name": "en-US-Standard-A", "ssmlGender": "FEMALE", "naturalSampleRateHertz": 24000},
    {"languageCodes": ["en-US"], "name": "en-US-Wavenet-B", "ssmlGender": "MALE", "naturalSampleRateHertz": 24000},
    {"languageCodes": ["en-US"], "name": "en-US-Wavenet-C", "ssmlGender": "FEMALE", "naturalSampleRateHertz": 24000},
    {"languageCodes": ["fil-PH"], "name": "fil-PH-Standard-A", "ssmlGender": "FEMALE", "naturalSampleRateHertz": 24000},
    {"languageCodes": ["de-DE"], "name": "de-DE-Wavenet-A", "ssmlGender": "MALE", "naturalSampleRateHertz": 24000}
  ]
}`

type cliTestEnv struct {
	server     *httptest.Server
	configPath string
	outputPath string
	cacheDir   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(testPayload))
	}))
	t.Cleanup(server.Close)

	env := &cliTestEnv{
		server:     server,
		configPath: filepath.Join(base, "config.toml"),
		outputPath: filepath.Join(base, "gen", "voicetable.go"),
		cacheDir:   filepath.Join(base, "cache"),
	}

	contents := fmt.Sprintf(`
[google_tts]
api_key = "test-key"
base_url = %q

[output]
path = %q

[cache]
enabled = true
dir = %q

[logging]
level = "error"
`, server.URL, env.outputPath, env.cacheDir)
	if err := os.WriteFile(env.configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return env
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}

func TestGenerateWritesTable(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "generate")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	requireContains(t, out, "Wrote ")

	src, err := os.ReadFile(env.outputPath)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}
	text := string(src)
	requireContains(t, text, "package voicetable")
	requireContains(t, text, "var Overrides = []Entry{")
	requireContains(t, text, `"en-US-Wavenet-B"`)
	// Unsupported language must not appear anywhere
	if strings.Contains(text, "fil-PH") {
		t.Fatalf("generated file contains unsupported language voice:\n%s", text)
	}
	// en-US anchors the standard tier ahead of the other English variants
	if strings.Index(text, "en-US-Standard-A") > strings.Index(text, "en-AU-Standard-A") {
		t.Fatalf("en-US voice does not lead its tier:\n%s", text)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, "generate"); err != nil {
		t.Fatalf("first generate: %v\n%s", err, out)
	}
	first, err := os.ReadFile(env.outputPath)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}

	if out, err := runCLI(t, env, "generate"); err != nil {
		t.Fatalf("second generate: %v\n%s", err, out)
	}
	second, err := os.ReadFile(env.outputPath)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("two runs over identical input produced different output")
	}
}

func TestGenerateToStdout(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "generate", "-o", "-", "--package", "langdata")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	requireContains(t, out, "package langdata")
	requireContains(t, out, "var PremiumVoices = []Entry{")
}

func TestGenerateOfflineReplaysCache(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, "generate"); err != nil {
		t.Fatalf("online generate: %v\n%s", err, out)
	}
	// Cut the provider off entirely; the cache must carry the rebuild.
	env.server.Close()

	out, err := runCLI(t, env, "generate", "--offline", "-o", "-")
	if err != nil {
		t.Fatalf("offline generate: %v\n%s", err, out)
	}
	requireContains(t, out, "var Overrides = []Entry{")
}

func TestGenerateOfflineWithEmptyCacheFails(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, env, "generate", "--offline"); err == nil {
		t.Fatal("expected offline generate to fail with empty cache")
	}
}

func TestVoicesList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "voices")
	if err != nil {
		t.Fatalf("voices: %v\n%s", err, out)
	}
	requireContains(t, out, "en-US-Wavenet-B")
	requireContains(t, out, "enhanced")
	requireContains(t, out, "English (US)")
}

func TestVoicesJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "voices", "--json")
	if err != nil {
		t.Fatalf("voices --json: %v\n%s", err, out)
	}
	requireContains(t, out, `"name": "de-DE-Wavenet-A"`)
}

func TestCatalogSections(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, "catalog")
	if err != nil {
		t.Fatalf("catalog: %v\n%s", err, out)
	}
	requireContains(t, out, "Overrides (2)")
	requireContains(t, out, "Standard (2)")
	requireContains(t, out, "Enhanced (3)")
	requireContains(t, out, "Premium (1)")
}

func TestRunsListAndPrune(t *testing.T) {
	env := setupCLITestEnv(t)

	if out, err := runCLI(t, env, "generate"); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	if out, err := runCLI(t, env, "generate"); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	out, err := runCLI(t, env, "runs", "list")
	if err != nil {
		t.Fatalf("runs list: %v\n%s", err, out)
	}
	if strings.Count(out, "\n") < 3 {
		t.Fatalf("expected two runs plus header:\n%s", out)
	}

	out, err = runCLI(t, env, "runs", "prune", "--keep", "1")
	if err != nil {
		t.Fatalf("runs prune: %v\n%s", err, out)
	}
	requireContains(t, out, "Pruned 1 run(s)")
}

func TestConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, err := runCLI(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when target exists without --overwrite")
	}
}

func TestMissingAPIKeyFailsGenerate(t *testing.T) {
	t.Setenv("GOOGLE_TTS_API_KEY", "")
	t.Setenv("API_KEY", "")
	env := setupCLITestEnv(t)

	base := t.TempDir()
	contents := fmt.Sprintf("[cache]\nenabled = false\ndir = %q\n", filepath.Join(base, "cache"))
	noKeyPath := filepath.Join(base, "config.toml")
	if err := os.WriteFile(noKeyPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	env.configPath = noKeyPath

	_, err := runCLI(t, env, "generate")
	if err == nil {
		t.Fatal("expected generate to fail without api key")
	}
	requireContains(t, err.Error(), "GOOGLE_TTS_API_KEY")
}
