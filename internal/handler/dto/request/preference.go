package request

import (
	"strings"

	"fieldbook/internal/usecase"
)

type UpdatePreferenceRequest struct {
	Language *string `json:"language"`
	Theme    *string `json:"theme"`
}

func (r *UpdatePreferenceRequest) ToUpdate() usecase.PreferenceUpdate {
	return usecase.PreferenceUpdate{Language: r.Language, Theme: r.Theme}
}

type TranslationsQuery struct {
	Keys string `form:"keys"`
	Lang string `form:"lang"`
}

// KeyList splits the comma separated keys parameter, dropping blanks.
func (q *TranslationsQuery) KeyList() []string {
	var keys []string
	for _, k := range strings.Split(q.Keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
