package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andareed/siftly-snippets/gitlab"
	"github.com/andareed/siftly-snippets/snippets"
)

func TestPrintList(t *testing.T) {
	lister := snippets.NewLister(threeSnippets(), snippets.StaticSettings(gitlab.Settings{Token: "t0k"}))
	var out, errOut bytes.Buffer
	if err := printList(context.Background(), lister, &out, &errOut); err != nil {
		t.Fatalf("printList: %v", err)
	}
	want := "# GitLab Snippets\n\n[private] alpha - a.md\n[public] beta - b.go\n[internal] gamma - c.sh\n"
	if out.String() != want {
		t.Fatalf("out = %q, want %q", out.String(), want)
	}
	if !strings.Contains(errOut.String(), "defaulting to gitlab.com") {
		t.Fatalf("missing URL warning, stderr = %q", errOut.String())
	}
}

func TestPrintListMissingToken(t *testing.T) {
	f := threeSnippets()
	lister := snippets.NewLister(f, snippets.StaticSettings(gitlab.Settings{}))
	var out, errOut bytes.Buffer
	err := printList(context.Background(), lister, &out, &errOut)
	if !gitlab.IsConfigMissing(err) {
		t.Fatalf("err = %v, want missing config", err)
	}
	if out.Len() != 0 || f.listCalls != 0 {
		t.Fatalf("out=%q listCalls=%d", out.String(), f.listCalls)
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "--env-file", filepath.Join(t.TempDir(), "none.env"), "config", "init", "--token", "abc"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "gitlab_token: abc") {
		t.Fatalf("config = %q", data)
	}

	root = newRootCmd()
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := root.Execute(); err == nil {
		t.Fatal("second init without --force should fail")
	}
}

func TestShowReportsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("gitlab_token: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "--env-file", filepath.Join(t.TempDir(), "none.env"), "show", "1"})

	err := root.Execute()
	if err == nil {
		t.Fatal("show with a broken config should fail")
	}
	if gitlab.IsConfigMissing(err) {
		t.Fatalf("err = %v, want the config read error", err)
	}
	if !strings.Contains(err.Error(), "loading settings") {
		t.Fatalf("err = %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("out = %q", out.String())
	}
}
