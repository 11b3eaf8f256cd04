package types

import "time"

// HTTPConfig holds shared HTTP settings used by both provider clients.
type HTTPConfig struct {
	// SearchTimeout is the per-request timeout for search and metadata
	// calls (default 10s).
	SearchTimeout time.Duration `json:"search_timeout" yaml:"search_timeout"`

	// DownloadTimeout is the per-request timeout for PDF downloads;
	// downloads are allowed to run longer than searches (default 60s).
	DownloadTimeout time.Duration `json:"download_timeout" yaml:"download_timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "paper-hub/0.1 (+https://example.org; mailto:me@example.org)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings shared by the arXiv and Semantic Scholar
// clients.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// MinRequestInterval is the minimum delay enforced between two
	// consecutive requests on one client instance (default 3s for arXiv,
	// 1s for Semantic Scholar). This is a plain spacing delay, not a
	// token bucket.
	MinRequestInterval time.Duration `json:"min_request_interval" yaml:"min_request_interval"`

	// MaxRetries is the number of attempts for transport failures
	// (default 3). HTTP error statuses are never retried.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// MaxConcurrent bounds in-flight requests on one client instance
	// (default 1). Raising it is a deliberate caller choice.
	MaxConcurrent int `json:"max_concurrent" yaml:"max_concurrent"`
}

// ScholarConfig extends ClientConfig with Semantic Scholar settings.
type ScholarConfig struct {
	ClientConfig `yaml:",inline"`

	// APIKey is the optional Semantic Scholar API key sent as x-api-key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// DownloadConfig holds settings for the download pipeline.
type DownloadConfig struct {
	// DestDir is the download hub directory. It must already exist;
	// category subdirectories are created beneath it.
	DestDir string `json:"dest_dir" yaml:"dest_dir"`

	// Overwrite re-downloads files that already exist on disk.
	Overwrite bool `json:"overwrite" yaml:"overwrite"`
}

// LibraryConfig holds settings for the download library index.
type LibraryConfig struct {
	// LibraryDir is the directory holding the SQLite index (default the
	// download hub).
	LibraryDir string `json:"library_dir" yaml:"library_dir"`

	// MaxResults is the default maximum number of library query results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all component configurations for the CLI.
type Config struct {
	Arxiv    ClientConfig   `json:"arxiv" yaml:"arxiv"`
	Scholar  ScholarConfig  `json:"scholar" yaml:"scholar"`
	Download DownloadConfig `json:"download" yaml:"download"`
	Library  LibraryConfig  `json:"library" yaml:"library"`
}
