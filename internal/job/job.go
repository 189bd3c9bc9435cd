// Package job runs one fetch-write-commit cycle over the source
// catalog. Sources run sequentially in catalog order and the first
// failure aborts the run before any remaining fetch and before the
// commit gate, so a partial failure never produces a partial commit.
package job

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cf-utils/ipsync/internal/config"
	apperrors "github.com/cf-utils/ipsync/pkg/errors"
	"github.com/cf-utils/ipsync/pkg/iplister"
	"github.com/cf-utils/ipsync/pkg/iplister/decoder/jsonlist"
	"github.com/cf-utils/ipsync/pkg/iplister/decoder/lines"
	"github.com/cf-utils/ipsync/pkg/iplister/decoder/proxytable"
	filereader "github.com/cf-utils/ipsync/pkg/iplister/reader/file"
	httpreader "github.com/cf-utils/ipsync/pkg/iplister/reader/http"
	"github.com/cf-utils/ipsync/pkg/outfile"
	"github.com/cf-utils/ipsync/pkg/pinger"
	"github.com/cf-utils/ipsync/pkg/proxycheck"
)

// some proxy list sites refuse requests without a browser user agent
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type (
	// Committer is the commit gate: stage paths, commit when changed,
	// report an unchanged tree as a successful no-op.
	Committer interface {
		Commit(ctx context.Context, paths []string) (bool, error)
	}

	hostProber interface {
		BestHosts(ctx context.Context, cidrs []string, n int) []string
	}

	proxyChecker interface {
		Live(ctx context.Context, candidates []string, n int) []string
	}
)

type Job struct {
	config  *config.Config
	log     *zap.SugaredLogger
	baseDir string
	timeout time.Duration
	gate    Committer
	prober  hostProber
	checker proxyChecker
}

func New(cfg *config.Config, log *zap.SugaredLogger, opts ...Option) *Job {
	j := &Job{
		config:  cfg,
		log:     log,
		baseDir: ".",
		timeout: 10 * time.Second,
		prober:  pinger.New(),
		checker: proxycheck.New(),
	}

	for _, opt := range opts {
		opt(j)
	}

	return j
}

// Run executes one cycle: fetch every source, replace its output file,
// then pass the outputs through the commit gate. On error no further
// source is fetched and the gate is skipped.
func (j *Job) Run(ctx context.Context) error {
	for _, src := range j.config.Sources {
		entries, err := j.fetch(ctx, src)
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}

		path := filepath.Join(j.baseDir, src.Output)
		if err := outfile.WriteLines(path, entries); err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}

		j.log.Infow("wrote snapshot", "source", src.Name, "output", src.Output, "entries", len(entries))
	}

	if j.gate == nil {
		j.log.Info("commit disabled, leaving work tree as is")
		return nil
	}

	created, err := j.gate.Commit(ctx, j.config.Outputs())
	if err != nil {
		return err
	}

	if created {
		j.log.Info("committed updated snapshots")
	} else {
		j.log.Info("nothing to commit")
	}

	return nil
}

func (j *Job) fetch(ctx context.Context, src config.Source) ([]string, error) {
	decoder, err := decoderFor(src)
	if err != nil {
		return nil, err
	}

	lister := iplister.New(
		readerFor(src),
		decoder,
		iplister.WithTimeout(j.timeout),
		iplister.WithValidator(validatorFor(src)),
	)

	entries, err := lister.GetIPs()
	if err != nil {
		return nil, err
	}

	if src.PingBest > 0 {
		entries = j.prober.BestHosts(ctx, entries, src.PingBest)
		if len(entries) == 0 {
			return nil, apperrors.NewParseError(errors.New("no reachable hosts in fetched ranges"))
		}
	}

	if src.CheckProxies > 0 {
		entries = j.checker.Live(ctx, entries, src.CheckProxies)
		if len(entries) == 0 {
			return nil, apperrors.NewParseError(errors.New("no live proxies in fetched list"))
		}
	}

	return entries, nil
}

func readerFor(src config.Source) iplister.Reader {
	if src.File != "" {
		return filereader.New(src.File)
	}

	if src.UsernameEnv != "" || src.PasswordEnv != "" {
		return httpreader.New(src.URL,
			httpreader.WithUserAgent(defaultUserAgent),
			httpreader.WithBasicAuth(os.Getenv(src.UsernameEnv), os.Getenv(src.PasswordEnv)),
		)
	}

	return httpreader.New(src.URL, httpreader.WithUserAgent(defaultUserAgent))
}

func decoderFor(src config.Source) (iplister.Decoder, error) {
	switch src.Format {
	case config.FormatLines:
		return lines.New(), nil
	case config.FormatProxyTable:
		return proxytable.New(), nil
	case config.FormatJSONList:
		return jsonlist.New(src.Field), nil
	default:
		return nil, fmt.Errorf("unknown format %q", src.Format)
	}
}

func validatorFor(src config.Source) iplister.Validator {
	switch src.Validate {
	case config.ValidateCIDR:
		return iplister.ValidateCIDRs
	case config.ValidateHostPort:
		return iplister.ValidateHostPorts
	default:
		return nil
	}
}
