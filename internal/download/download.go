// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/paper-hub/internal/apierr"
	"github.com/pdiddy/paper-hub/internal/categories"
	"github.com/pdiddy/paper-hub/internal/httputil"
	"github.com/pdiddy/paper-hub/pkg/types"
)

// copyChunkSize is the fixed buffer size for streaming response bodies
// to disk.
const copyChunkSize = 8192

// Options configures one Fetch call.
type Options struct {
	// DestDir is the download hub. It must already exist; Fetch creates
	// only the category subdirectory beneath it.
	DestDir string

	// Overwrite re-downloads a file that already exists. When false an
	// existing file makes Fetch an idempotent no-op.
	Overwrite bool

	// UserAgent is sent with the download request.
	UserAgent string

	// MaxRetries bounds transport-failure retries (0 means the default).
	MaxRetries int
}

// FileName computes the destination filename for a paper: the slugified
// title with the provider-native id suffix appended when extractable,
// always ending in ".pdf".
func FileName(p *types.Paper) string {
	slug := Slugify(p.Title)
	suffix := IDSuffix(p.ID)
	switch {
	case slug != "" && suffix != "":
		return slug + "-" + suffix + ".pdf"
	case slug != "":
		return slug + ".pdf"
	case suffix != "":
		return suffix + ".pdf"
	default:
		return "paper.pdf"
	}
}

// CategoryDir returns the category subdirectory name for a paper, from
// its primary category or venue, falling back to "UNKNOWN".
func CategoryDir(p *types.Paper) string {
	cat := p.PrimaryCategory
	if cat == "" {
		cat = p.Venue
	}
	return categories.DirName(cat)
}

// Fetch resolves the paper's PDF URL, streams it into
// destDir/CATEGORY/slug[-id].pdf, and writes a JSON sidecar of the full
// record next to it. Warnings (the sidecar write failing) go to w; they
// do not fail the download. Fetch reads the paper but never mutates it.
func Fetch(ctx context.Context, client *http.Client, paper *types.Paper, opts Options, w io.Writer) (string, error) {
	info, err := os.Stat(opts.DestDir)
	if err != nil || !info.IsDir() {
		return "", &apierr.DownloadError{Msg: fmt.Sprintf("destination directory does not exist: %s", opts.DestDir)}
	}

	pdfURL := ResolvePDFURL(paper)
	if pdfURL == "" {
		return "", &apierr.DownloadError{Msg: "no PDF URL available for this paper"}
	}

	categoryDir := filepath.Join(opts.DestDir, CategoryDir(paper))
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return "", &apierr.DownloadError{Msg: "creating category directory", Err: err}
	}

	dest := filepath.Join(categoryDir, FileName(paper))
	if _, err := os.Stat(dest); err == nil && !opts.Overwrite {
		return dest, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return "", &apierr.DownloadError{Msg: "creating request", Err: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := httputil.DoWithRetry(ctx, client, req, opts.MaxRetries)
	if err != nil {
		return "", &apierr.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &apierr.APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	written, err := streamToFile(dest, resp.Body)
	if err != nil {
		os.Remove(dest)
		return "", &apierr.DownloadError{Msg: "writing " + dest, Err: err}
	}
	if written == 0 {
		os.Remove(dest)
		return "", &apierr.DownloadError{Msg: "downloaded file is empty"}
	}

	if err := writeSidecar(dest, paper); err != nil {
		fmt.Fprintf(w, "warning: could not write metadata sidecar for %s: %v\n", dest, err)
	}

	return dest, nil
}

// streamToFile copies body to path in fixed-size chunks and returns the
// byte count.
func streamToFile(path string, body io.Reader) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, copyChunkSize)
	written, copyErr := io.CopyBuffer(f, body, buf)
	closeErr := f.Close()
	if copyErr != nil {
		return written, copyErr
	}
	return written, closeErr
}

// writeSidecar persists the full record as indented JSON next to the
// PDF, same name with a .json extension.
func writeSidecar(pdfPath string, paper *types.Paper) error {
	data, err := json.MarshalIndent(paper, "", "  ")
	if err != nil {
		return err
	}
	sidecar := pdfPath[:len(pdfPath)-len(filepath.Ext(pdfPath))] + ".json"
	return os.WriteFile(sidecar, data, 0o644)
}
