package response

import (
	"fieldbook/internal/domain/preference"
)

type OKResponse struct {
	OK bool `json:"ok"`
}

type TranslationsResponse struct {
	Language     preference.Language `json:"language"`
	Translations map[string]string   `json:"translations"`
}
