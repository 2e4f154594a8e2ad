package writer

import (
	"encoding/base64"
	"fmt"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// decodeVisual recovers the raw PNG bytes from a visual's embedded
// base64 copy.
func decodeVisual(v core.Visual) ([]byte, error) {
	if v.Data == "" {
		return nil, fmt.Errorf("visual %s has no embedded data", v.Filename)
	}
	return base64.StdEncoding.DecodeString(v.Data)
}

// sourceURLs lists the verified source URLs in ranked order.
func sourceURLs(state *core.ContentState) []string {
	urls := make([]string, 0, len(state.VerifiedSources))
	for _, src := range state.VerifiedSources {
		urls = append(urls, src.URL)
	}
	return urls
}
