// Package http provides an HTTP-based implementation of pdftext.Acquirer
// that downloads remote documents into temporary files.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/fwojciec/pdftext"
)

// DefaultTimeout is the default timeout for a single download attempt.
const DefaultTimeout = 30 * time.Second

// TempPattern names the temporary files documents are downloaded into.
const TempPattern = "pdftext-*.pdf"

// Ensure Downloader implements pdftext.Acquirer at compile time.
var _ pdftext.Acquirer = (*Downloader)(nil)

// Downloader fetches documents over HTTP into temporary files.
// Failed attempts are retried unless the server rejected the request.
type Downloader struct {
	client  *http.Client
	timeout time.Duration
	delays  []time.Duration
	maxSize int64
	limiter *HostLimiter
	tempDir string
	logf    LogFunc
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithTimeout sets the timeout for each download attempt.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithRetryDelays sets the waits between attempts. An empty list disables
// retries. Defaults to DefaultRetryDelays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(dl *Downloader) {
		dl.delays = delays
	}
}

// WithMaxSize rejects documents larger than n bytes. Zero means unlimited.
func WithMaxSize(n int64) Option {
	return func(dl *Downloader) {
		dl.maxSize = n
	}
}

// WithLimiter throttles requests per host.
func WithLimiter(l *HostLimiter) Option {
	return func(dl *Downloader) {
		dl.limiter = l
	}
}

// WithTempDir sets the directory temporary files are created in.
// Defaults to os.TempDir.
func WithTempDir(dir string) Option {
	return func(dl *Downloader) {
		dl.tempDir = dir
	}
}

// WithRetryLog sets a function called before each retry.
func WithRetryLog(fn LogFunc) Option {
	return func(dl *Downloader) {
		dl.logf = fn
	}
}

// NewDownloader creates a new Downloader.
func NewDownloader(opts ...Option) *Downloader {
	dl := &Downloader{
		timeout: DefaultTimeout,
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
	}

	return dl
}

// Acquire downloads the document at rawURL. Releasing the returned document
// removes the temporary file.
func (dl *Downloader) Acquire(ctx context.Context, rawURL string) (*pdftext.LocalDocument, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, pdftext.Errorf(pdftext.EINVALID, "invalid document URL: %q", rawURL)
	}

	var path string
	err = withRetry(ctx, rawURL, dl.delays, dl.logf, func() error {
		if dl.limiter != nil {
			if err := dl.limiter.Wait(ctx, u.Hostname()); err != nil {
				return err
			}
		}
		p, err := dl.download(ctx, rawURL)
		if err != nil {
			return err
		}
		path = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pdftext.NewLocalDocument(path, rawURL, func() error {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}), nil
}

// download performs one attempt and returns the temporary file path.
func (dl *Downloader) download(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", permanent(err)
	}

	resp, err := dl.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode, rawURL)
	}
	if dl.maxSize > 0 && resp.ContentLength > dl.maxSize {
		return "", tooLarge(dl.maxSize)
	}

	f, err := os.CreateTemp(dl.tempDir, TempPattern)
	if err != nil {
		return "", permanent(fmt.Errorf("create temp file: %w", err))
	}
	path := f.Name()

	body := io.Reader(resp.Body)
	if dl.maxSize > 0 {
		body = io.LimitReader(resp.Body, dl.maxSize+1)
	}
	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && dl.maxSize > 0 && n > dl.maxSize {
		err = tooLarge(dl.maxSize)
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}

func statusError(code int, rawURL string) error {
	msg := fmt.Sprintf("HTTP %d for %s", code, rawURL)
	switch {
	case code == http.StatusNotFound || code == http.StatusGone:
		return permanent(pdftext.Errorf(pdftext.ENOTFOUND, "%s", msg))
	case code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= 500:
		return pdftext.Errorf(pdftext.EUNAVAILABLE, "%s", msg)
	default:
		return permanent(pdftext.Errorf(pdftext.EINVALID, "%s", msg))
	}
}

func tooLarge(limit int64) error {
	return permanent(pdftext.Errorf(pdftext.EINVALID, "document exceeds %d bytes", limit))
}
