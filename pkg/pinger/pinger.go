// Package pinger selects the lowest-latency ranges from a fetched list
// by probing one representative host per range with the system ping.
package pinger

import (
	"context"
	"math"
	"net/netip"
	"os/exec"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultCount   = 4
	defaultTimeout = 10 * time.Second
	defaultWorkers = 20
)

type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

type Pinger struct {
	count   int
	timeout time.Duration
	workers int
	run     runFunc
}

func New(opts ...pingerOption) *Pinger {
	p := &Pinger{
		count:   defaultCount,
		timeout: defaultTimeout,
		workers: defaultWorkers,
		run:     execRun,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// BestHosts probes one representative host per CIDR and returns up to
// n reachable hosts ordered by ascending average latency. Unreachable
// or unparseable ranges are skipped, never fatal.
func (p *Pinger) BestHosts(ctx context.Context, cidrs []string, n int) []string {
	type probe struct {
		latency float64
		host    string
	}

	results := make([]probe, len(cidrs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for idx, cidr := range cidrs {
		idx, cidr := idx, cidr
		g.Go(func() error {
			results[idx] = probe{latency: math.Inf(1)}

			host, ok := RepresentativeHost(cidr)
			if !ok {
				return nil
			}

			results[idx] = probe{latency: p.probe(gctx, host), host: host}
			return nil
		})
	}
	_ = g.Wait()

	reachable := []probe{}
	for _, r := range results {
		if !math.IsInf(r.latency, 1) {
			reachable = append(reachable, r)
		}
	}

	sort.SliceStable(reachable, func(i, j int) bool {
		return reachable[i].latency < reachable[j].latency
	})

	if n > len(reachable) {
		n = len(reachable)
	}

	best := make([]string, 0, n)
	for _, r := range reachable[:n] {
		best = append(best, r.host)
	}

	return best
}

// RepresentativeHost returns the first usable host address of a range
// (network address + 1, covering both address families).
func RepresentativeHost(cidr string) (string, bool) {
	prefix, err := netip.ParsePrefix(cidr)
	if err != nil {
		return "", false
	}

	host := prefix.Addr().Next()
	if !prefix.Contains(host) {
		return "", false
	}

	return host.String(), true
}

func (p *Pinger) probe(ctx context.Context, host string) float64 {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}

	out, err := p.run(ctx, "ping", countFlag, strconv.Itoa(p.count), host)
	if err != nil {
		return math.Inf(1)
	}

	return parseLatency(string(out))
}

// parseLatency extracts the average round-trip time in milliseconds
// from ping output: the platform summary line when present, otherwise
// the mean of the per-echo time= samples.
func parseLatency(out string) float64 {
	lines := strings.Split(out, "\n")

	for _, line := range lines {
		// Linux/macOS summary: min/avg/max[/mdev] = a/b/c[/d] ms
		if strings.Contains(line, "min/avg/max") {
			eq := strings.Index(line, "=")
			if eq < 0 {
				continue
			}

			parts := strings.Split(strings.TrimSpace(line[eq+1:]), "/")
			if len(parts) < 2 {
				continue
			}

			if v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
				return v
			}
		}

		// Windows summary: Average = Nms
		if idx := strings.Index(line, "Average ="); idx >= 0 {
			val := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[idx+len("Average ="):]), "ms"))
			if v, err := strconv.ParseFloat(val, 64); err == nil {
				return v
			}
		}
	}

	samples := []float64{}
	for _, line := range lines {
		idx := strings.Index(line, "time=")
		if idx < 0 {
			continue
		}

		fields := strings.Fields(line[idx+len("time="):])
		if len(fields) == 0 {
			continue
		}

		if v, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "ms"), 64); err == nil {
			samples = append(samples, v)
		}
	}

	if len(samples) == 0 {
		return math.Inf(1)
	}

	sum := 0.0
	for _, s := range samples {
		sum += s
	}

	return sum / float64(len(samples))
}
