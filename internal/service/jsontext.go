package service

import (
	"encoding/json"
	"log/slog"
)

// Several catalog columns store JSON arrays/objects as text. Decoding is
// forgiving: malformed content is logged and rendered as empty rather than
// failing the whole response.

func decodeOptions(logger *slog.Logger, raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var options []string
	if err := json.Unmarshal([]byte(*raw), &options); err != nil {
		logger.Warn("Malformed options JSON in catalog row", "error", err)
		return []string{}
	}
	return options
}

func decodeScores(logger *slog.Logger, raw *string) map[string]int {
	if raw == nil || *raw == "" {
		return nil
	}
	var scores map[string]int
	if err := json.Unmarshal([]byte(*raw), &scores); err != nil {
		logger.Warn("Malformed scores JSON in feedback row", "error", err)
		return nil
	}
	return scores
}
