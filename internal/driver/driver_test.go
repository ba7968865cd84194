package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"whittle"
	"whittle/internal/cache"
	"whittle/internal/pipeline"
)

type recordSink struct {
	mu     sync.Mutex
	events []pipeline.Event
}

func (s *recordSink) OnEvent(e pipeline.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordSink) has(stage pipeline.Stage, status pipeline.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.Stage == stage && e.Status == status {
			return true
		}
	}
	return false
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"app.js", true},
		{"app.mjs", true},
		{"app.cjs", true},
		{"lib/APP.JS", true},
		{"app.min.js", false},
		{"app.min.mjs", false},
		{"notes.txt", false},
		{"js", false},
	}
	for _, tt := range tests {
		if got := IsSourceFile(tt.path); got != tt.want {
			t.Errorf("IsSourceFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOutPathFor(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		path string
		want string
	}{
		{
			name: "sibling default",
			cfg:  Config{},
			path: filepath.Join("src", "app.js"),
			want: filepath.Join("src", "app.min.js"),
		},
		{
			name: "explicit out path wins",
			cfg:  Config{OutPath: "bundle.js"},
			path: "app.js",
			want: "bundle.js",
		},
		{
			name: "out dir mirrors relative layout",
			cfg:  Config{OutDir: "dist", BaseDir: "src"},
			path: filepath.Join("src", "lib", "a.mjs"),
			want: filepath.Join("dist", "lib", "a.min.mjs"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.outPathFor(tt.path); got != tt.want {
				t.Errorf("outPathFor(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMinifyFileWrites(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "app.js", "debugger;\nlet count = 1;\nreport(count);\n")

	sink := &recordSink{}
	res := MinifyFile(Config{Write: true, Sink: sink}, path)
	if res.Err != nil {
		t.Fatalf("MinifyFile: %v", res.Err)
	}
	if want := filepath.Join(dir, "app.min.js"); res.OutPath != want {
		t.Errorf("OutPath = %q, want %q", res.OutPath, want)
	}

	out, err := os.ReadFile(res.OutPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "debugger") {
		t.Errorf("debugger statement survived: %q", out)
	}
	if !sink.has(pipeline.StageWrite, pipeline.StatusDone) {
		t.Error("no write-done event reported")
	}
}

func TestMinifyFileSourcemap(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "app.js", "let answer = 42;\nuse(answer);\n")

	opts := &whittle.MinifyOptions{Sourcemap: true}
	res := MinifyFile(Config{Options: opts, Write: true}, path)
	if res.Err != nil {
		t.Fatalf("MinifyFile: %v", res.Err)
	}
	if res.Map == nil {
		t.Fatal("no source map produced")
	}
	if res.MapPath != res.OutPath+".map" {
		t.Errorf("MapPath = %q, want %q", res.MapPath, res.OutPath+".map")
	}
	if _, err := os.Stat(res.MapPath); err != nil {
		t.Errorf("map file not written: %v", err)
	}
	out, err := os.ReadFile(res.OutPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "sourceMappingURL=app.min.js.map") {
		t.Errorf("missing sourceMappingURL comment in %q", out)
	}
}

func TestMinifyFileParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "broken.js", "let = ;\n")

	sink := &recordSink{}
	res := MinifyFile(Config{Sink: sink}, path)
	if res.Err == nil {
		t.Fatal("expected error for unparseable source")
	}
	if !sink.has(pipeline.StageParse, pipeline.StatusError) {
		t.Error("no error event reported")
	}
}

func TestMinifyFileCache(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "app.js", "let total = 1 + 2;\nuse(total);\n")

	c, err := cache.OpenDir(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	cfg := Config{Cache: c}

	first := MinifyFile(cfg, path)
	if first.Err != nil {
		t.Fatalf("first run: %v", first.Err)
	}
	if first.Cached {
		t.Error("first run reported a cache hit")
	}

	second := MinifyFile(cfg, path)
	if second.Err != nil {
		t.Fatalf("second run: %v", second.Err)
	}
	if !second.Cached {
		t.Error("second run missed the cache")
	}
	if second.Code != first.Code {
		t.Errorf("cached code %q differs from fresh %q", second.Code, first.Code)
	}

	// A different option set must not reuse the entry.
	third := MinifyFile(Config{Cache: c, Options: &whittle.MinifyOptions{Mangle: whittle.Off[whittle.MangleConfig]()}}, path)
	if third.Err != nil {
		t.Fatalf("third run: %v", third.Err)
	}
	if third.Cached {
		t.Error("different options reused the cache entry")
	}
}

func TestMinifyDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.js", "f(2);\n")
	writeSource(t, dir, filepath.Join("sub", "a.js"), "f(1);\n")
	writeSource(t, dir, "skip.min.js", "f(0);\n")
	writeSource(t, dir, "notes.txt", "not code\n")

	outDir := filepath.Join(dir, "dist")
	results, err := MinifyDir(context.Background(), Config{Write: true, OutDir: outDir, Jobs: 2}, dir)
	if err != nil {
		t.Fatalf("MinifyDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Sorted input order: b.js before sub/a.js.
	if filepath.Base(results[0].Path) != "b.js" || filepath.Base(results[1].Path) != "a.js" {
		t.Errorf("unexpected order: %q, %q", results[0].Path, results[1].Path)
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("%s: %v", res.Path, res.Err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "b.min.js")); err != nil {
		t.Errorf("missing mirrored output: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "sub", "a.min.js")); err != nil {
		t.Errorf("missing mirrored subdir output: %v", err)
	}
}

func TestMinifyDirEmpty(t *testing.T) {
	results, err := MinifyDir(context.Background(), Config{}, t.TempDir())
	if err != nil {
		t.Fatalf("MinifyDir: %v", err)
	}
	if results != nil {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "mod.js", "export const one = 1;\n")

	res, err := ParseFile(path, nil)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(res.Result.Errors) != 0 {
		t.Errorf("unexpected diagnostics: %v", res.Result.Errors)
	}
	if len(res.Result.Program) == 0 {
		t.Error("empty serialized program")
	}

	if _, err := ParseFile(filepath.Join(dir, "absent.js"), nil); err == nil {
		t.Error("expected error for missing file")
	}
}
