package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// Decoder engines.
const (
	EngineCSV    = "csv"
	EngineDuckDB = "duckdb"
)

// DefaultSource is the launch table published with the original dashboard.
const DefaultSource = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/IBM-DS0321EN-SkillsNetwork/datasets/spacex_launch_dash.csv"

// Options controls how a dataset is fetched and decoded.
type Options struct {
	// Source is an http(s) URL or a local file path.
	Source string
	// Engine selects the decoder: EngineCSV (default) or EngineDuckDB.
	Engine string
	// Timeout bounds the fetch. Zero means no timeout beyond ctx.
	Timeout time.Duration
	// Client is used for http(s) sources. Defaults to http.DefaultClient.
	Client *http.Client
	Logger *slog.Logger
}

// Load fetches and decodes the dataset in one shot. Any failure is returned
// as is; there is no retry and no partial result.
func Load(ctx context.Context, opts Options) (*Dataset, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	logger.Debug("fetching dataset", "source", opts.Source, "engine", opts.Engine)

	body, err := open(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()

	var records []LaunchRecord
	switch opts.Engine {
	case "", EngineCSV:
		records, err = ParseCSV(body)
	case EngineDuckDB:
		records, err = ReadDuckDB(ctx, body)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEngine, opts.Engine)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", opts.Source, err)
	}

	ds, err := New(opts.Source, records)
	if err != nil {
		return nil, err
	}

	logger.Info("dataset loaded",
		"source", opts.Source,
		"rows", ds.Len(),
		"sites", len(ds.Sites()),
		"min_payload", ds.MinPayload(),
		"max_payload", ds.MaxPayload(),
		"duration", time.Since(start),
	)
	return ds, nil
}

// IsRemote reports whether source is fetched over HTTP.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func open(ctx context.Context, opts Options) (io.ReadCloser, error) {
	if !IsRemote(opts.Source) {
		f, err := os.Open(strings.TrimPrefix(opts.Source, "file://"))
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset: %w", err)
		}
		return f, nil
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, */*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch dataset %s: unexpected status %s", opts.Source, resp.Status)
	}
	return resp.Body, nil
}
