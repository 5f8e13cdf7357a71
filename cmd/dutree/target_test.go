package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveTargetsDefaultsToCurrentDir(t *testing.T) {
	targets, err := resolveTargets(nil)
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if len(targets) != 1 || targets[0].Remote || targets[0].LocalPath != "." {
		t.Fatalf("unexpected targets: %+v", targets)
	}
}

func TestResolveTargetsExistingLocalPathWins(t *testing.T) {
	root := t.TempDir()
	localPath := filepath.Join(root, "alice@server")
	if err := os.Mkdir(localPath, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	targets, err := resolveTargets([]string{localPath})
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if len(targets) != 1 || targets[0].Remote || targets[0].LocalPath != localPath {
		t.Fatalf("unexpected targets: %+v", targets)
	}
}

func TestResolveTargetsRemoteDefaultPath(t *testing.T) {
	targets, err := resolveTargets([]string{"alice@10.0.0.5"})
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if len(targets) != 1 || !targets[0].Remote {
		t.Fatalf("expected a single remote target, got %+v", targets)
	}
	if targets[0].SSHDest != "alice@10.0.0.5" || targets[0].RemotePath != "." {
		t.Errorf("unexpected remote target: %+v", targets[0])
	}
}

func TestResolveTargetsRemoteWithPath(t *testing.T) {
	targets, err := resolveTargets([]string{"alice@10.0.0.5:/var/log"})
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if targets[0].SSHDest != "alice@10.0.0.5" || targets[0].RemotePath != "/var/log" {
		t.Errorf("unexpected remote target: %+v", targets[0])
	}
}

func TestResolveTargetsMultipleLocalAndRemote(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "a"), 0o755); err != nil {
		t.Fatal(err)
	}

	targets, err := resolveTargets([]string{filepath.Join(root, "a"), "bob@example.com"})
	if err != nil {
		t.Fatalf("resolveTargets returned error: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(targets))
	}
	if targets[0].Remote {
		t.Error("expected first target to be local")
	}
	if !targets[1].Remote {
		t.Error("expected second target to be remote")
	}
}

func TestParseRemoteTargetRejectsEmptyHost(t *testing.T) {
	_, _, isRemote, err := parseRemoteTarget("alice@")
	if !isRemote || err == nil {
		t.Fatalf("expected a remote-syntax error, got isRemote=%v err=%v", isRemote, err)
	}
}

func TestParseRemoteTargetNotRemoteForPlainPath(t *testing.T) {
	_, _, isRemote, err := parseRemoteTarget("/nonexistent/path")
	if isRemote || err != nil {
		t.Fatalf("expected a plain local fallback, got isRemote=%v err=%v", isRemote, err)
	}
}
