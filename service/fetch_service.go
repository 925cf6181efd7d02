package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/openkb/rag-be/types"
	"github.com/openkb/rag-be/utils"
)

// FetchService downloads documents over HTTP and extracts their plain
// text. The downloaded payload only ever touches disk as a transient temp
// file; it is removed on every exit path.
type FetchService struct {
	httpClient *http.Client
	tempDir    string
}

func NewFetchService(timeout time.Duration, tempDir string) *FetchService {
	return &FetchService{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tempDir: tempDir,
	}
}

func (s *FetchService) FetchDocument(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrFetch, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w: fetching %s: %v", types.ErrTimeout, url, err)
		}
		return "", fmt.Errorf("%w: %v", types.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d fetching %s", types.ErrFetch, resp.StatusCode, url)
	}

	// The PDF parser needs a file path, so spill the payload to a temp
	// file scoped to this call.
	tempPath, cleanup, err := utils.SaveToTempFile(resp.Body, s.tempDir, "ingest-*.pdf")
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrFetch, err)
	}
	defer cleanup()

	return extractText(tempPath)
}

// extractText concatenates per-page plain text with a newline separator.
func extractText(path string) (text string, err error) {
	// The pdf package panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", types.ErrExtraction, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrExtraction, err)
	}
	defer f.Close()

	var pages []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip failed pages instead of aborting the document
			log.Printf("Warning: failed to extract text from page %d: %v", pageNum, err)
			continue
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
