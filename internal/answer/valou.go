package answer

import (
	"encoding/json"
	"fmt"

	"github.com/goodworkapp/goodwork/internal/profile"
)

// ParseBulkStyling decodes the bulk-styling reply: a JSON object keyed by
// area id. Keys that are not known area ids are ignored so an over-eager
// model cannot grow the document.
func ParseBulkStyling(raw string) (map[string]profile.ValouSuggestion, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}
	if IsAppError(cleaned) {
		return nil, &AppError{Message: cleaned}
	}

	var decoded map[string]profile.ValouSuggestion
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	known := make(map[string]struct{})
	for _, id := range profile.ValouAreaIDs() {
		known[id] = struct{}{}
	}
	out := make(map[string]profile.ValouSuggestion, len(decoded))
	for id, s := range decoded {
		if _, ok := known[id]; !ok {
			continue
		}
		out[id] = s
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no known area keys", ErrInvalidJSON)
	}
	return out, nil
}
