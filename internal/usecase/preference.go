package usecase

import (
	"context"
	"log/slog"

	"fieldbook/internal/domain/preference"
	"fieldbook/internal/infra/storage"
	"fieldbook/internal/pkg/errs"
)

const (
	languageKeyPrefix = "language:"
	themeKeyPrefix    = "theme:"

	DefaultClientID = "default"
)

type PreferenceUpdate struct {
	Language *string
	Theme    *string
}

type PreferenceUseCase interface {
	Get(ctx context.Context, clientID string) preference.Preference
	Update(ctx context.Context, clientID string, u PreferenceUpdate) (preference.Preference, error)
	Translate(ctx context.Context, clientID string, lang string, keys []string) (preference.Language, map[string]string)
}

type preferenceUseCaseImpl struct {
	blobs  storage.BlobStore
	logger *slog.Logger
}

func NewPreferenceUseCase(blobs storage.BlobStore, logger *slog.Logger) PreferenceUseCase {
	return &preferenceUseCaseImpl{blobs: blobs, logger: logger}
}

// Get reads language and theme independently; either falls back to its
// default when missing or unreadable.
func (p *preferenceUseCaseImpl) Get(ctx context.Context, clientID string) preference.Preference {
	clientID = normalizeClientID(clientID)
	pref := preference.Default()

	var lang string
	if ok, err := storage.LoadJSON(ctx, p.blobs, languageKeyPrefix+clientID, &lang); err != nil {
		p.logger.Warn("unreadable language preference", "client_id", clientID, "error", err)
	} else if ok {
		if l, err := preference.ParseLanguage(lang); err == nil {
			pref.Language = l
		}
	}

	var theme string
	if ok, err := storage.LoadJSON(ctx, p.blobs, themeKeyPrefix+clientID, &theme); err != nil {
		p.logger.Warn("unreadable theme preference", "client_id", clientID, "error", err)
	} else if ok {
		if t, err := preference.ParseTheme(theme); err == nil {
			pref.Theme = t
		}
	}
	return pref
}

func (p *preferenceUseCaseImpl) Update(ctx context.Context, clientID string, u PreferenceUpdate) (preference.Preference, error) {
	clientID = normalizeClientID(clientID)

	var (
		lang  preference.Language
		theme preference.Theme
		err   error
	)
	if u.Language != nil {
		if lang, err = preference.ParseLanguage(*u.Language); err != nil {
			return preference.Preference{}, errs.Mark(err, errs.ErrDomainValidation)
		}
	}
	if u.Theme != nil {
		if theme, err = preference.ParseTheme(*u.Theme); err != nil {
			return preference.Preference{}, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	if lang != "" {
		if err := storage.SaveJSON(ctx, p.blobs, languageKeyPrefix+clientID, lang); err != nil {
			return preference.Preference{}, errs.Wrap(err, "failed to save language")
		}
	}
	if theme != "" {
		if err := storage.SaveJSON(ctx, p.blobs, themeKeyPrefix+clientID, theme); err != nil {
			return preference.Preference{}, errs.Wrap(err, "failed to save theme")
		}
	}
	return p.Get(ctx, clientID), nil
}

// Translate resolves keys in lang, or in the client's stored language when
// lang is empty. Unsupported languages use the default table.
func (p *preferenceUseCaseImpl) Translate(ctx context.Context, clientID, lang string, keys []string) (preference.Language, map[string]string) {
	var language preference.Language
	if lang == "" {
		language = p.Get(ctx, clientID).Language
	} else if l, err := preference.ParseLanguage(lang); err == nil {
		language = l
	} else {
		language = preference.DefaultLanguage
	}

	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = preference.Translate(language, k)
	}
	return language, out
}

func normalizeClientID(clientID string) string {
	if clientID == "" {
		return DefaultClientID
	}
	return clientID
}
