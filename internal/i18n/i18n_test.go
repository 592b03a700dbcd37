package i18n

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/nao1215/versioncompare/internal/model"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		prefs []string
		want  language.Tag
	}{
		{"no preference", nil, language.English},
		{"empty strings", []string{"", ""}, language.English},
		{"japanese tag", []string{"ja"}, language.Japanese},
		{"regional japanese", []string{"ja-JP"}, language.Japanese},
		{"accept-language header", []string{"ja-JP,ja;q=0.9,en;q=0.8"}, language.Japanese},
		{"unsupported falls back", []string{"fr"}, language.English},
		{"first preference wins", []string{"en", "ja"}, language.English},
		{"garbage skipped", []string{"!!!", "ja"}, language.Japanese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Match(tt.prefs...); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.prefs, got, tt.want)
			}
		})
	}
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	t.Run("english passes keys through", func(t *testing.T) {
		t.Parallel()

		tr := Default()
		if got := tr.T(MsgNoVersion); got != "no version" {
			t.Errorf("got %q", got)
		}
		if got := tr.T(MsgFetchFailed, "https://a.example/api.php"); got != "could not retrieve version information from https://a.example/api.php" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("japanese", func(t *testing.T) {
		t.Parallel()

		tr := New(language.Japanese)
		if tr.Tag() != language.Japanese {
			t.Fatalf("expected japanese, got %v", tr.Tag())
		}
		if got := tr.T(model.LabelDatabase); got != "データベース" {
			t.Errorf("got %q", got)
		}
		if got := tr.T(MsgFetchFailed, "X"); got != "X からバージョン情報を取得できませんでした" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("unsupported language uses english", func(t *testing.T) {
		t.Parallel()

		tr := New(language.German)
		if tr.Tag() != language.English {
			t.Errorf("expected english fallback, got %v", tr.Tag())
		}
	})

	t.Run("unknown keys are verbatim", func(t *testing.T) {
		t.Parallel()

		tr := New(language.Japanese)
		for _, key := range []string{"ParserFunctions", "100%Done", "%s"} {
			if got := tr.T(key, "ignored"); got != key {
				t.Errorf("T(%q) = %q", key, got)
			}
		}
	})

	t.Run("nil translator formats english", func(t *testing.T) {
		t.Parallel()

		var tr *Translator
		if got := tr.T(MsgNoLogo); got != "no logo" {
			t.Errorf("got %q", got)
		}
	})
}

func TestEveryLabelIsTranslated(t *testing.T) {
	t.Parallel()

	labels := []string{
		model.LabelMediaWiki, model.LabelPHP, model.LabelDatabase,
		model.LabelTotalExtensions, model.LabelUniqueExtensions, model.LabelSharedExtensions,
	}
	for _, l := range labels {
		if !Has(l) {
			t.Errorf("label %q missing from catalog", l)
		}
	}
}
