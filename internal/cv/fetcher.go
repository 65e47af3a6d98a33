package cv

import (
	"fmt"
	"net/url"
	"path"
	"time"

	httpclient "resume-extract/pkg/http"
)

// Fetcher downloads a resume from a URL and hands it to the parser, for
// callers that hold a link instead of the file itself.
type Fetcher struct {
	client *httpclient.Client
	parser *Parser
}

func NewFetcher(parser *Parser, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: httpclient.NewClient(timeout),
		parser: parser,
	}
}

// Fetch downloads rawURL and parses the body like a regular upload. The
// filename is taken from the URL path.
func (f *Fetcher) Fetch(rawURL string) (*ParsedResume, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid resume URL: %s", rawURL)
	}

	filename := path.Base(u.Path)
	if !SupportedType(filename) {
		return nil, fmt.Errorf("unsupported file type in URL: %s", filename)
	}

	resp, err := f.client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download resume: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("resume download returned status %d", resp.StatusCode)
	}

	return f.parser.ParseFile(filename, resp.Body)
}
