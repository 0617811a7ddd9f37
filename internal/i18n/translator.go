package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/currency"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-client/pkg/kvstore"
)

var currencies = map[string]currency.Type{
	"USD": currency.USD,
	"EUR": currency.EUR,
	"GBP": currency.GBP,
	"EGP": currency.EGP,
	"SAR": currency.SAR,
	"AED": currency.AED,
	"KWD": currency.KWD,
	"QAR": currency.QAR,
	"CAD": currency.CAD,
	"AUD": currency.AUD,
}

// Translator is the language context: the active language, its direction
// and locale-aware formatting. The choice is persisted in the store.
type Translator struct {
	tables Tables
	store  kvstore.Store
	uni    *ut.UniversalTranslator
	logger *zap.Logger

	mu   sync.RWMutex
	lang string
}

// NewTranslator restores the persisted language, falling back to fallback
// and then to English when neither is supported.
func NewTranslator(ctx context.Context, store kvstore.Store, fallback string, logger *zap.Logger) (*Translator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tables, err := LoadTables()
	if err != nil {
		return nil, err
	}
	english := en.New()
	t := &Translator{
		tables: tables,
		store:  store,
		uni:    ut.New(english, english, ar.New()),
		logger: logger,
		lang:   DefaultLanguage,
	}
	if IsSupported(fallback) {
		t.lang = fallback
	}
	if store != nil {
		saved, err := store.Get(ctx, kvstore.KeyLanguage)
		switch {
		case err == nil && IsSupported(saved):
			t.lang = saved
		case err != nil && !errors.Is(err, kvstore.ErrNotFound):
			logger.Warn("read persisted language", zap.Error(err))
		}
	}
	return t, nil
}

// Language returns the active language tag.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLanguage switches and persists the active language.
func (t *Translator) SetLanguage(ctx context.Context, lang string) error {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !IsSupported(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
	if t.store == nil {
		return nil
	}
	if err := t.store.Set(ctx, kvstore.KeyLanguage, lang); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	return nil
}

// T translates key in the active language.
func (t *Translator) T(key string, params map[string]string) string {
	return Translate(t.tables, key, t.Language(), params)
}

// Direction returns the text direction of the active language.
func (t *Translator) Direction() string {
	return Direction(t.Language())
}

// IsRTL reports whether the active language is right to left.
func (t *Translator) IsRTL() bool {
	return IsRTL(t.Language())
}

// FormatNumber renders v with the locale's separators and the given number
// of decimals.
func (t *Translator) FormatNumber(v float64, decimals uint64) string {
	return t.locale().FmtNumber(v, decimals)
}

// FormatCurrency renders amount with two decimals in the ISO 4217 currency
// code. Codes without locale data fall back to "<number> <code>".
func (t *Translator) FormatCurrency(amount float64, code string) string {
	loc := t.locale()
	code = strings.ToUpper(strings.TrimSpace(code))
	if c, ok := currencies[code]; ok {
		return loc.FmtCurrency(amount, 2, c)
	}
	return strings.TrimSpace(loc.FmtNumber(amount, 2) + " " + code)
}

func (t *Translator) locale() locales.Translator {
	trans, found := t.uni.GetTranslator(t.Language())
	if !found {
		trans = t.uni.GetFallback()
	}
	return trans
}
