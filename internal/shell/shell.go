// Package shell spawns the credentialed interactive subshell.
package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
)

const defaultShell = "/bin/bash"

// ErrShellExit is returned when the subshell exits non-zero
var ErrShellExit = errors.New("shell exited with error")

// execCommand is swapped out in tests
var execCommand = exec.Command

// Run spawns the user's interactive shell with the credential map exported
// into its environment and blocks until the user exits it. The parent
// process environment is never mutated.
func Run(profileName string, creds map[string]string) error {
	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = defaultShell
	}

	cmd := execCommand(sh)
	cmd.Env = BuildEnv(os.Environ(), profileName, creds)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: exit code %d", ErrShellExit, exitErr.ExitCode())
		}
		return fmt.Errorf("failed to spawn shell %s: %w", sh, err)
	}
	return nil
}

// BuildEnv overlays the credential map onto the base environment and
// prefixes the prompt with the active profile name. Keys in the credential
// map replace any existing entries.
func BuildEnv(base []string, profileName string, creds map[string]string) []string {
	env := base
	for key := range creds {
		env = filterEnv(env, key)
	}

	// Deterministic ordering keeps the environment diffable
	keys := make([]string, 0, len(creds))
	for key := range creds {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		env = append(env, key+"="+creds[key])
	}

	prefix := fmt.Sprintf("(aws:%s) ", profileName)
	if current, ok := lookupEnv(base, "PS1"); ok {
		env = filterEnv(env, "PS1")
		env = append(env, "PS1="+prefix+current)
	} else {
		env = append(env, `PS1=`+prefix+`\$ `)
	}

	return env
}

func filterEnv(env []string, key string) []string {
	prefix := key + "="
	out := make([]string, 0, len(env))
	for _, entry := range env {
		if !strings.HasPrefix(entry, prefix) {
			out = append(out, entry)
		}
	}
	return out
}

func lookupEnv(env []string, key string) (string, bool) {
	prefix := key + "="
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			return entry[len(prefix):], true
		}
	}
	return "", false
}
