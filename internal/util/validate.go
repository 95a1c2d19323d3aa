package util

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	apiKeyRe       = regexp.MustCompile(`^pxl_[a-f0-9]{64}$`)
	unsafeCharsRe  = regexp.MustCompile(`[^a-zA-Z0-9_\-\s]`)
	multiSpacesOff = strings.NewReplacer(" ", "_")
)

// ValidateAPIKey checks the platform API key format: "pxl_" followed by 64
// hex characters.
func ValidateAPIKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return fmt.Errorf("API key is required. Get your API key from the Pixl dashboard")
	}
	if !apiKeyRe.MatchString(apiKey) {
		return fmt.Errorf("invalid API key format. Expected format: pxl_[64 hex characters]")
	}
	return nil
}

// ValidateTitle trims and length-limits a title. Empty titles are an error;
// over-long titles are truncated, not rejected.
func ValidateTitle(title string, maxLength int) (string, error) {
	sanitized := strings.TrimSpace(title)
	if sanitized == "" {
		return "", fmt.Errorf("title is required and cannot be empty")
	}
	if len(sanitized) > maxLength {
		sanitized = sanitized[:maxLength]
	}
	return sanitized, nil
}

// ValidateURL checks that a URL parses and carries a scheme and host.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL format. Must include scheme (http/https) and host")
	}
	return nil
}

// SanitizeFilename strips characters unsafe for filenames, converts spaces
// to underscores and limits the length.
func SanitizeFilename(text string, maxLength int) string {
	safe := unsafeCharsRe.ReplaceAllString(text, "")
	safe = multiSpacesOff.Replace(safe)
	if len(safe) > maxLength {
		safe = safe[:maxLength]
	}
	return safe
}
