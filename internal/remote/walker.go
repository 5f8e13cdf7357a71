// Package remote scans a filesystem over SFTP instead of locally,
// producing the same tree.Node shape internal/fswalk builds for a local
// root. SSH authentication (auth.go) tries, in order, the local
// ssh-agent, the user's default key files, and — when not in batch mode
// — an interactive password/keyboard-interactive prompt; host keys are
// verified against ~/.ssh/known_hosts with first-use trust-on-connect.
//
// The SFTP protocol carries no link-count attribute, so hardlink
// deduplication is unavailable for remote targets: Walk never calls a
// HardlinkRecorder, and callers should report the Aware engine as
// unsupported for a remote root rather than silently under-counting.
package remote

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	pathpkg "path"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pkg/sftp"
	"github.com/sadopc/dutree/internal/fswalk"
	"github.com/sadopc/dutree/internal/size"
	"github.com/sadopc/dutree/internal/tree"
	"golang.org/x/crypto/ssh"
)

const defaultRemotePath = "."

// Config identifies the SSH endpoint a Walker connects to.
type Config struct {
	Target    string // "user@host"
	Port      int
	BatchMode bool // disable interactive prompts (agent/keys only)
}

type sftpClient interface {
	ReadDir(string) ([]os.FileInfo, error)
	Stat(string) (os.FileInfo, error)
	ReadLink(string) (string, error)
	RealPath(string) (string, error)
}

// Walker scans a remote directory tree over SFTP.
type Walker struct {
	cfg         Config
	dial        func(context.Context, Config) (sftpClient, io.Closer, error)
	Concurrency int
	Reporter    fswalk.Reporter
}

// NewWalker returns a Walker that connects per cfg on the first Walk call.
func NewWalker(cfg Config) *Walker {
	return &Walker{cfg: cfg, dial: dialSFTP}
}

func (w *Walker) reporter() fswalk.Reporter {
	if w.Reporter != nil {
		return w.Reporter
	}
	return fswalk.NullReporter{}
}

func (w *Walker) concurrency() int {
	if w.Concurrency > 0 {
		return w.Concurrency
	}
	return runtime.GOMAXPROCS(0) * 3
}

// Walk dials a new connection, scans remotePath and closes the connection
// before returning its tree.Node. remotePath "" defaults to the login directory.
func (w *Walker) Walk(ctx context.Context, remotePath string) (*tree.Node, error) {
	if w.dial == nil {
		w.dial = dialSFTP
	}
	client, closer, err := w.dial(ctx, w.cfg)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	if strings.TrimSpace(remotePath) == "" {
		remotePath = defaultRemotePath
	}
	rootPath := cleanRemotePath(remotePath)
	if resolved, err := client.RealPath(rootPath); err == nil {
		rootPath = cleanRemotePath(resolved)
	}

	info, err := client.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("remote: cannot stat %q: %w", rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("remote: %q is not a directory", rootPath)
	}

	sem := make(chan struct{}, w.concurrency())
	var visited sync.Map
	visited.Store(rootPath, true)

	name := pathpkg.Base(rootPath)
	if name == "" || name == "." || name == "/" {
		name = rootPath
	}
	return w.walkDir(ctx, client, rootPath, name, sem, &visited), nil
}

func (w *Walker) walkDir(ctx context.Context, client sftpClient, dirPath, name string, sem chan struct{}, visited *sync.Map) *tree.Node {
	reporter := w.reporter()

	select {
	case <-ctx.Done():
		return tree.Dir(name, size.Bytes(0), []*tree.Node{})
	default:
	}

	entries, err := client.ReadDir(dirPath)
	if err != nil {
		reporter.ReportError(fswalk.ErrorReport{Op: fswalk.OpReadDirectory, Path: dirPath, Err: err})
		reporter.ObserveEntry(true, 0)
		return tree.Dir(name, size.Bytes(0), []*tree.Node{})
	}
	reporter.ObserveEntry(true, 0)

	// dirJob defers a subdirectory's recursive walk; everything else
	// (plain files, broken or file-targeted symlinks, already-visited
	// directories) resolves to a leaf tree.Node immediately, since an
	// SFTP ReadDir entry already carries a regular file's size.
	type dirJob struct {
		index int
		path  string
		name  string
	}
	children := make([]*tree.Node, len(entries))
	var dirJobs []dirJob

	for i, entry := range entries {
		entryName := entry.Name()
		fullPath := cleanRemotePath(pathpkg.Join(dirPath, entryName))

		if entry.Mode()&os.ModeSymlink != 0 {
			resolvedPath, targetInfo, err := resolveSymlinkTarget(client, fullPath)
			if err != nil {
				reporter.ReportError(fswalk.ErrorReport{Op: fswalk.OpAccessEntry, Path: fullPath, Err: err})
				reporter.ObserveEntry(false, 0)
				children[i] = tree.File(entryName, size.Bytes(0))
				continue
			}
			if targetInfo.IsDir() {
				if _, loaded := visited.LoadOrStore(resolvedPath, true); loaded {
					children[i] = tree.File(entryName, size.Bytes(0))
					continue
				}
				dirJobs = append(dirJobs, dirJob{index: i, path: resolvedPath, name: entryName})
				continue
			}
			sz := uint64(targetInfo.Size())
			reporter.ObserveEntry(false, sz)
			children[i] = tree.File(entryName, size.Bytes(sz))
			continue
		}

		if entry.IsDir() {
			scanPath := fullPath
			if resolved, err := client.RealPath(fullPath); err == nil {
				scanPath = cleanRemotePath(resolved)
			}
			if _, loaded := visited.LoadOrStore(scanPath, true); loaded {
				children[i] = tree.File(entryName, size.Bytes(0))
				continue
			}
			dirJobs = append(dirJobs, dirJob{index: i, path: scanPath, name: entryName})
			continue
		}

		sz := uint64(entry.Size())
		reporter.ObserveEntry(false, sz)
		children[i] = tree.File(entryName, size.Bytes(sz))
	}

	var wg sync.WaitGroup
	for _, job := range dirJobs {
		job := job
		select {
		case sem <- struct{}{}:
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				children[job.index] = w.walkDir(ctx, client, job.path, job.name, sem, visited)
			}()
		default:
			children[job.index] = w.walkDir(ctx, client, job.path, job.name, sem, visited)
		}
	}
	wg.Wait()

	return tree.Dir(name, size.Bytes(0), children)
}

func resolveSymlinkTarget(client sftpClient, symlinkPath string) (string, os.FileInfo, error) {
	target, err := client.ReadLink(symlinkPath)
	if err != nil {
		return "", nil, err
	}
	if !pathpkg.IsAbs(target) {
		target = pathpkg.Join(pathpkg.Dir(symlinkPath), target)
	}
	target = cleanRemotePath(target)

	resolvedPath, err := client.RealPath(target)
	if err != nil {
		return "", nil, err
	}
	resolvedPath = cleanRemotePath(resolvedPath)

	info, err := client.Stat(resolvedPath)
	if err != nil {
		return "", nil, err
	}
	return resolvedPath, info, nil
}

func cleanRemotePath(p string) string {
	if p == "" {
		return defaultRemotePath
	}
	clean := pathpkg.Clean(strings.ReplaceAll(p, "\\", "/"))
	if clean == "" {
		return defaultRemotePath
	}
	return clean
}

func dialSFTP(_ context.Context, cfg Config) (sftpClient, io.Closer, error) {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, nil, fmt.Errorf("remote: ssh port must be between 1 and 65535")
	}

	user, host, err := parseSSHTarget(cfg.Target)
	if err != nil {
		return nil, nil, err
	}

	hostCB, err := hostKeyCallback(host, cfg.Port, cfg.BatchMode)
	if err != nil {
		return nil, nil, err
	}

	auth, err := buildAuthMethods(user, host, cfg.BatchMode)
	if err != nil {
		return nil, nil, err
	}

	sshConfig := &ssh.ClientConfig{
		User:            user,
		Auth:            auth,
		HostKeyCallback: hostCB,
		Timeout:         15 * time.Second,
	}

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", cfg.Port))
	sshClient, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("remote: SSH connection failed: %w", err)
	}

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, nil, fmt.Errorf("remote: cannot start SFTP subsystem: %w", err)
	}

	return client, &remoteCloser{ssh: sshClient, sftp: client}, nil
}

type remoteCloser struct {
	ssh  *ssh.Client
	sftp *sftp.Client
}

func (c *remoteCloser) Close() error {
	var retErr error
	if c.sftp != nil {
		if err := c.sftp.Close(); err != nil {
			retErr = err
		}
	}
	if c.ssh != nil {
		if err := c.ssh.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}
	return retErr
}
