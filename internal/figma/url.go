package figma

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrBadFileRef indicates a file reference that is neither a Figma URL
// nor a plausible bare file key.
var ErrBadFileRef = errors.New("unrecognized figma file reference")

// urlPathMarkers are the path segments that precede the file key in
// figma.com URLs.
var urlPathMarkers = []string{"file", "design", "proto", "board"}

// ParseFileRef extracts the file key and any node-id query parameters
// from a Figma URL, or passes a bare file key through unchanged. Node ids
// in URLs use "-" where the API wants ":"; the translation happens here.
func ParseFileRef(ref string) (string, []string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil, ErrBadFileRef
	}

	if !strings.Contains(ref, "/") {
		return ref, nil, nil
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrBadFileRef, ref)
	}

	key := fileKeyFromPath(parsed.Path)
	if key == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrBadFileRef, ref)
	}

	var nodeIDs []string

	for _, raw := range parsed.Query()["node-id"] {
		if raw != "" {
			nodeIDs = append(nodeIDs, strings.ReplaceAll(raw, "-", ":"))
		}
	}

	return key, nodeIDs, nil
}

// fileKeyFromPath returns the path segment following a known marker
// segment, or empty when no marker is present.
func fileKeyFromPath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	for i, segment := range segments {
		for _, marker := range urlPathMarkers {
			if segment == marker && i+1 < len(segments) {
				return segments[i+1]
			}
		}
	}

	return ""
}
