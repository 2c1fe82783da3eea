package answer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseCategorySuggestions decodes a suggestion reply into a list of new
// entries. Entries already present (after trimming) are dropped, which makes
// applying the same reply twice a no-op.
func ParseCategorySuggestions(raw string, existing []string) ([]string, error) {
	cleaned := StripCodeFence(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}
	if IsAppError(cleaned) {
		return nil, &AppError{Message: cleaned}
	}

	var items []string
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	seen := make(map[string]struct{}, len(existing)+len(items))
	for _, e := range existing {
		seen[strings.TrimSpace(e)] = struct{}{}
	}
	var fresh []string
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		fresh = append(fresh, it)
	}
	return fresh, nil
}
