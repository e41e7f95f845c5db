package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/spiget/internal/spigettest"
	apierr "github.com/matzehuels/spiget/pkg/errors"
	"github.com/matzehuels/spiget/pkg/models"
	"github.com/matzehuels/spiget/pkg/observability"
)

// env is a config file pointing at a fake API with a file cache in a temp dir.
type env struct {
	srv      *spigettest.Server
	config   string
	cacheDir string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	t.Cleanup(observability.Reset)

	dir := t.TempDir()
	e := &env{
		srv:      spigettest.NewServer(t),
		config:   filepath.Join(dir, "config.toml"),
		cacheDir: filepath.Join(dir, "cache"),
	}
	body := fmt.Sprintf("base_url = %q\n\n[cache]\nbackend = \"file\"\ndir = %q\n", e.srv.BaseURL(), e.cacheDir)
	if err := os.WriteFile(e.config, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return e
}

// run executes the CLI with args and returns its stdout.
func (e *env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	defer c.Close()

	root := c.RootCommand()
	root.SetArgs(append([]string{"--config", e.config}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestResourceCommands(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"resources", "get", "9089"}, []string{"EssentialsX #9089", "EssentialsX is the essential plugin suite.", "1.19, 1.20"}},
		{[]string{"resources", "list"}, []string{"EssentialsX", "Chat Pro", "premium", "Skripty"}},
		{[]string{"resources", "premium"}, []string{"Chat Pro"}},
		{[]string{"resources", "author", "9089"}, []string{"SupaHam #2"}},
		{[]string{"resources", "reviews", "9089"}, []string{"md_5", "Great plugin!"}},
		{[]string{"resources", "updates", "9089"}, []string{"2.20.0 released"}},
		{[]string{"resources", "updates", "9089", "--latest"}, []string{"2.20.0 released", "Supports 1.20"}},
		{[]string{"resources", "versions", "9089"}, []string{"2.19.0", "2.20.0"}},
		{[]string{"resources", "versions", "9089", "--latest"}, []string{"2.20.0 #500001"}},
		{[]string{"resources", "version", "9089", "500000"}, []string{"2.19.0", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}},
		{[]string{"resources", "for", "1.20", "--method", "all"}, []string{"all", "EssentialsX"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out := e.mustRun(t, tt.args...)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestResourceListFlags(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "resources", "free", "--size", "1", "--page", "2", "--sort", "-downloads", "--fields", "id,name")

	want := "resources/free?size=1&page=2&sort=-downloads&fields=id,name"
	if got := e.srv.Last().URI(); got != want {
		t.Errorf("request = %q, want %q", got, want)
	}
}

func TestJSONOutput(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "--json", "resources", "free")
	var list []models.Resource
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	for _, r := range list {
		if r.Premium {
			t.Errorf("free list contains premium resource %d", r.ID)
		}
	}

	out = e.mustRun(t, "--json", "resources", "download", "9089")
	var dl map[string]string
	if err := json.Unmarshal([]byte(out), &dl); err != nil {
		t.Fatal(err)
	}
	if dl["url"] != spigettest.CDN+"9089.jar" {
		t.Errorf("url = %q", dl["url"])
	}
}

func TestDownloadCommand(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"resources", "download", "9089"}, spigettest.CDN + "9089.jar"},
		{[]string{"resources", "download", "9089", "--version", "latest"}, spigettest.CDN + "9089/500001.jar"},
		{[]string{"resources", "download", "5555"}, "https://example.org/skripty.sk"},
	}
	for _, tt := range tests {
		out := e.mustRun(t, tt.args...)
		if strings.TrimSpace(out) != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, out, tt.want)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		args []string
		code apierr.Code
		sent bool
	}{
		{"missing resource", []string{"resources", "get", "424242"}, apierr.ErrCodeNotFound, true},
		{"bad id", []string{"resources", "get", "abc"}, apierr.ErrCodeInvalidInput, false},
		{"negative id", []string{"authors", "get", "--", "-1"}, apierr.ErrCodeInvalidInput, false},
		{"bad field", []string{"search", "resources", "chat", "--field", "bogus"}, apierr.ErrCodeInvalidField, false},
		{"bad method", []string{"resources", "for", "1.20", "--method", "some"}, apierr.ErrCodeInvalidField, false},
		{"premium download", []string{"resources", "download", "1234"}, apierr.ErrCodeHTTPStatus, true},
		{"wrong secret", []string{"webhook", "status", "hook-1", "--secret", "nope"}, apierr.ErrCodeHTTPStatus, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(e.srv.Requests())
			_, err := e.run(t, tt.args...)
			if !apierr.Is(err, tt.code) {
				t.Fatalf("err = %v, want code %s", err, tt.code)
			}
			if sent := len(e.srv.Requests()) > before; sent != tt.sent {
				t.Errorf("request sent = %v, want %v", sent, tt.sent)
			}

			var buf bytes.Buffer
			PrintError(&buf, err)
			if !strings.Contains(buf.String(), "["+string(tt.code)+"]") {
				t.Errorf("PrintError() = %q, missing code", buf.String())
			}
		})
	}
}

func TestAuthorAndCategoryCommands(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"authors", "list"}, []string{"md_5", "SupaHam"}},
		{[]string{"authors", "get", "1"}, []string{"md_5 #1", "md-5"}},
		{[]string{"authors", "resources", "1"}, []string{"Chat Pro", "Skripty"}},
		{[]string{"authors", "reviews", "1"}, []string{"Great plugin!"}},
		{[]string{"authors", "search", "supa"}, []string{"SupaHam"}},
		{[]string{"search", "authors", "md"}, []string{"md_5"}},
		{[]string{"search", "resources", "chat", "pro"}, []string{"Chat Pro"}},
		{[]string{"categories", "list"}, []string{"Bungee - Spigot", "Chat"}},
		{[]string{"categories", "get", "17"}, []string{"Chat"}},
		{[]string{"categories", "resources", "4"}, []string{"EssentialsX", "Skripty"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out := e.mustRun(t, tt.args...)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestStatusAndWebhookCommands(t *testing.T) {
	e := newEnv(t)

	if out := e.mustRun(t, "status"); !strings.Contains(out, "spiget-test") {
		t.Errorf("status output = %q", out)
	}

	out := e.mustRun(t, "webhook", "events")
	for _, ev := range spigettest.Events {
		if !strings.Contains(out, ev) {
			t.Errorf("events output missing %q", ev)
		}
	}

	out = e.mustRun(t, "webhook", "status", spigettest.WebhookID, "--secret", spigettest.WebhookSecret)
	if !strings.Contains(out, "Webhook hook-1") {
		t.Errorf("webhook status output = %q", out)
	}
}

func TestFileCacheAcrossRuns(t *testing.T) {
	e := newEnv(t)
	uri := "resources/9089"

	e.mustRun(t, "resources", "get", "9089")
	e.mustRun(t, "resources", "get", "9089")
	if n := e.srv.Hits(uri); n != 1 {
		t.Fatalf("hits after cached run = %d, want 1", n)
	}

	e.mustRun(t, "--no-cache", "resources", "get", "9089")
	if n := e.srv.Hits(uri); n != 2 {
		t.Fatalf("hits after --no-cache = %d, want 2", n)
	}

	out := e.mustRun(t, "cache", "clear")
	if !strings.Contains(out, "Cleared 1 cached responses") {
		t.Errorf("cache clear output = %q", out)
	}

	e.mustRun(t, "resources", "get", "9089")
	if n := e.srv.Hits(uri); n != 3 {
		t.Errorf("hits after clear = %d, want 3", n)
	}
}

func TestCachePath(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun(t, "cache", "path")
	if strings.TrimSpace(out) != e.cacheDir {
		t.Errorf("cache path = %q, want %q", out, e.cacheDir)
	}
}

func TestConfigErrors(t *testing.T) {
	e := newEnv(t)
	e.config = filepath.Join(t.TempDir(), "missing.toml")

	_, err := e.run(t, "status")
	if !apierr.Is(err, apierr.ErrCodeConfig) {
		t.Errorf("err = %v, want CONFIG_ERROR", err)
	}
	if len(e.srv.Requests()) != 0 {
		t.Error("no request should be sent with a broken config")
	}
}

func TestVersionAndCompletion(t *testing.T) {
	e := newEnv(t)

	if out := e.mustRun(t, "version"); !strings.Contains(out, "version: ") {
		t.Errorf("version output = %q", out)
	}

	var buf bytes.Buffer
	c := New(&buf, &bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "spiget") {
		t.Error("bash completion should mention the command name")
	}
}
