package gitrepo

type gateOption func(*Gate)

// WithRunner swaps the git runner, used by tests.
func WithRunner(runner Runner) gateOption {
	return func(g *Gate) {
		g.runner = runner
	}
}
