// Package gitrepo commits updated list snapshots to a work tree. The
// git identity is passed in explicitly; nothing here reads or mutates
// global git configuration.
package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes git with the given arguments inside a work tree and
// returns the trimmed combined output.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

type Config struct {
	Dir         string
	AuthorName  string
	AuthorEmail string
	Message     string
	Push        bool
}

type Gate struct {
	config Config
	runner Runner
}

func New(config Config, opts ...gateOption) *Gate {
	g := &Gate{
		config: config,
		runner: execRunner{},
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Commit stages the given paths and commits them when anything
// changed. An unchanged tree is a successful no-op and returns false.
func (g *Gate) Commit(ctx context.Context, paths []string) (bool, error) {
	if len(paths) == 0 {
		return false, nil
	}

	addArgs := append([]string{"add", "--"}, paths...)
	if out, err := g.runner.Run(ctx, g.config.Dir, addArgs...); err != nil {
		return false, fmt.Errorf("git add: %w: %s", err, out)
	}

	statusArgs := append([]string{"status", "--porcelain", "--"}, paths...)
	out, err := g.runner.Run(ctx, g.config.Dir, statusArgs...)
	if err != nil {
		return false, fmt.Errorf("git status: %w: %s", err, out)
	}

	if out == "" {
		return false, nil
	}

	commitArgs := []string{
		"-c", "user.name=" + g.config.AuthorName,
		"-c", "user.email=" + g.config.AuthorEmail,
		"commit", "-m", g.config.Message,
	}
	if out, err := g.runner.Run(ctx, g.config.Dir, commitArgs...); err != nil {
		return false, fmt.Errorf("git commit: %w: %s", err, out)
	}

	if g.config.Push {
		if out, err := g.runner.Run(ctx, g.config.Dir, "push"); err != nil {
			return true, fmt.Errorf("git push: %w: %s", err, out)
		}
	}

	return true, nil
}
