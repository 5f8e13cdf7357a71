package remote

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sadopc/dutree/internal/fswalk"
)

// fakeFileInfo is a minimal os.FileInfo for the fake sftp client below.
type fakeFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() os.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() any           { return nil }

// fakeSFTP implements sftpClient over an in-memory directory map, keyed by
// cleaned remote path, letting walker tests run without a real SSH server.
// dirPaths lists every path Stat should report as a directory; dirs holds
// the listing ReadDir returns for it (a path present in dirPaths but
// absent from dirs simulates a directory that exists but can't be read).
type fakeSFTP struct {
	dirPaths map[string]bool
	dirs     map[string][]os.FileInfo
	links    map[string]string
}

func (f *fakeSFTP) ReadDir(path string) ([]os.FileInfo, error) {
	entries, ok := f.dirs[path]
	if !ok {
		return nil, os.ErrPermission
	}
	return entries, nil
}

func (f *fakeSFTP) Stat(path string) (os.FileInfo, error) {
	if f.dirPaths[path] {
		return fakeFileInfo{name: path, isDir: true}, nil
	}
	return fakeFileInfo{name: path, size: 42}, nil
}

func (f *fakeSFTP) ReadLink(path string) (string, error) {
	if target, ok := f.links[path]; ok {
		return target, nil
	}
	return "", os.ErrNotExist
}

func (f *fakeSFTP) RealPath(path string) (string, error) { return path, nil }

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

func TestWalkerBuildsTreeFromFakeClient(t *testing.T) {
	client := &fakeSFTP{
		dirPaths: map[string]bool{"/root": true, "/root/sub": true},
		dirs: map[string][]os.FileInfo{
			"/root": {
				fakeFileInfo{name: "a.txt", size: 10},
				fakeFileInfo{name: "sub", isDir: true},
			},
			"/root/sub": {
				fakeFileInfo{name: "b.txt", size: 5},
			},
		},
	}

	w := &Walker{dial: func(context.Context, Config) (sftpClient, io.Closer, error) {
		return client, noopCloser{}, nil
	}}

	root, err := w.Walk(context.Background(), "/root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Size().Uint64() != 15 {
		t.Errorf("root size = %d, want 15", root.Size().Uint64())
	}
	if len(root.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children()))
	}
}

func TestWalkerReportsReadDirFailure(t *testing.T) {
	// "/root" is a known directory (Stat succeeds) but has no entry in
	// dirs, so ReadDir fails and the walker must degrade to an empty,
	// zero-size node while reporting the failure.
	client := &fakeSFTP{dirPaths: map[string]bool{"/root": true}}

	var errs []fswalk.ErrorReport
	reporter := &recordingReporter{onError: func(e fswalk.ErrorReport) { errs = append(errs, e) }}

	w := &Walker{
		dial: func(context.Context, Config) (sftpClient, io.Closer, error) {
			return client, noopCloser{}, nil
		},
		Reporter: reporter,
	}

	root, err := w.Walk(context.Background(), "/root")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Size().Uint64() != 0 || len(root.Children()) != 0 {
		t.Errorf("expected a degraded empty root, got size=%d children=%d", root.Size().Uint64(), len(root.Children()))
	}
	if len(errs) != 1 || errs[0].Op != fswalk.OpReadDirectory {
		t.Errorf("expected one OpReadDirectory report, got %+v", errs)
	}
}

type recordingReporter struct {
	onError func(fswalk.ErrorReport)
}

func (r *recordingReporter) ReportError(e fswalk.ErrorReport) {
	if r.onError != nil {
		r.onError(e)
	}
}
func (r *recordingReporter) ObserveEntry(bool, uint64) {}
