package main

import (
	"fmt"
	"os"
	"strings"
)

// target is one resolved positional argument: either a local filesystem
// path, or an SSH destination plus the remote path to walk there.
type target struct {
	Remote     bool
	LocalPath  string
	SSHDest    string // "user@host"
	RemotePath string
}

// resolveTargets maps the CLI's positional arguments to targets. An argument
// that names a real local entry always wins as local, even if it happens to
// look like "user@host"; otherwise "user@host" or "user@host:/remote/path"
// dispatches to internal/remote, and anything else is taken as a literal
// local path (and will surface its own stat error later).
func resolveTargets(args []string) ([]target, error) {
	if len(args) == 0 {
		return []target{{LocalPath: "."}}, nil
	}

	targets := make([]target, 0, len(args))
	for _, a := range args {
		if pathExists(a) {
			targets = append(targets, target{LocalPath: a})
			continue
		}
		dest, remotePath, isRemote, err := parseRemoteTarget(a)
		if err != nil {
			return nil, err
		}
		if isRemote {
			targets = append(targets, target{Remote: true, SSHDest: dest, RemotePath: remotePath})
			continue
		}
		targets = append(targets, target{LocalPath: a})
	}
	return targets, nil
}

// parseRemoteTarget recognizes "user@host" and "user@host:/remote/path".
// isRemote is false (with a nil error) for anything that plainly isn't
// attempting remote syntax, so the caller falls back to treating it as a
// local path; err is non-nil only once the input has committed to looking
// like a remote destination but is malformed.
func parseRemoteTarget(raw string) (dest, remotePath string, isRemote bool, err error) {
	if strings.ContainsAny(raw, `/\`) && !strings.Contains(raw, "@") {
		return "", "", false, nil
	}
	if strings.Count(raw, "@") != 1 {
		return "", "", false, nil
	}

	user, hostPath, _ := strings.Cut(raw, "@")
	if user == "" || hostPath == "" {
		return "", "", true, fmt.Errorf("invalid remote target %q: expected user@host", raw)
	}
	if strings.HasPrefix(user, "-") {
		return "", "", true, fmt.Errorf("invalid remote target %q", raw)
	}
	if strings.ContainsAny(user, " \t\n\r") {
		return "", "", true, fmt.Errorf("invalid remote target %q: spaces are not allowed", raw)
	}

	host, remotePath := hostPath, "."
	if idx := strings.Index(hostPath, ":"); idx >= 0 {
		host, remotePath = hostPath[:idx], hostPath[idx+1:]
		if remotePath == "" {
			remotePath = "."
		}
	}
	if host == "" || strings.HasPrefix(host, "-") {
		return "", "", true, fmt.Errorf("invalid remote target %q: empty host", raw)
	}
	if strings.ContainsAny(host, " \t\n\r") {
		return "", "", true, fmt.Errorf("invalid remote target %q: spaces are not allowed", raw)
	}

	return user + "@" + host, remotePath, true, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
