package gitrepo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeRunner struct {
	calls  [][]string
	dirs   []string
	status string
	errOn  string
}

func (f *fakeRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	f.dirs = append(f.dirs, dir)

	if f.errOn != "" && contains(args, f.errOn) {
		return "fatal: something", errors.New("exit status 128")
	}

	if contains(args, "status") {
		return f.status, nil
	}

	return "", nil
}

func contains(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func testConfig() Config {
	return Config{
		Dir:         "/work",
		AuthorName:  "ipsync",
		AuthorEmail: "ipsync@example.com",
		Message:     "Update IP range lists",
	}
}

func TestCommitNoChanges(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{status: ""}
	g := New(testConfig(), WithRunner(runner))

	created, err := g.Commit(context.Background(), []string{"cfipv4.txt", "cfipv6.txt", "proxyIP.txt"})
	assert.NoError(t, err)
	assert.False(t, created)

	// add + status only, no commit attempted
	assert.Len(t, runner.calls, 2)
	assert.Equal(t, "add", runner.calls[0][0])
	assert.Equal(t, []string{"status", "--porcelain", "--", "cfipv4.txt", "cfipv6.txt", "proxyIP.txt"}, runner.calls[1])
	assert.Equal(t, "/work", runner.dirs[0])
}

func TestCommitWithChanges(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{status: "M cfipv4.txt"}
	g := New(testConfig(), WithRunner(runner))

	created, err := g.Commit(context.Background(), []string{"cfipv4.txt"})
	assert.NoError(t, err)
	assert.True(t, created)

	assert.Len(t, runner.calls, 3)

	commitCall := strings.Join(runner.calls[2], " ")
	assert.Contains(t, commitCall, "user.name=ipsync")
	assert.Contains(t, commitCall, "user.email=ipsync@example.com")
	assert.Contains(t, commitCall, "commit -m Update IP range lists")
}

func TestCommitAndPush(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Push = true

	runner := &fakeRunner{status: "M cfipv4.txt"}
	g := New(cfg, WithRunner(runner))

	created, err := g.Commit(context.Background(), []string{"cfipv4.txt"})
	assert.NoError(t, err)
	assert.True(t, created)

	assert.Equal(t, []string{"push"}, runner.calls[len(runner.calls)-1])
}

func TestCommitNoChangesSkipsPush(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Push = true

	runner := &fakeRunner{status: ""}
	g := New(cfg, WithRunner(runner))

	created, err := g.Commit(context.Background(), []string{"cfipv4.txt"})
	assert.NoError(t, err)
	assert.False(t, created)

	for _, call := range runner.calls {
		assert.NotEqual(t, "push", call[0])
	}
}

func TestCommitAddFailure(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{errOn: "add"}
	g := New(testConfig(), WithRunner(runner))

	created, err := g.Commit(context.Background(), []string{"cfipv4.txt"})
	assert.Error(t, err)
	assert.False(t, created)
	assert.Len(t, runner.calls, 1)
}

func TestCommitNoPaths(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	g := New(testConfig(), WithRunner(runner))

	created, err := g.Commit(context.Background(), nil)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, runner.calls)
}
