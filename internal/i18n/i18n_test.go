// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestTranslateEnglish(t *testing.T) {
	SetLang("en")
	if got := T("validate.ok"); got != "Plan is valid." {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestTranslateGerman(t *testing.T) {
	SetLang("de")
	if got := T("validate.ok"); got != "Plan ist gültig." {
		t.Fatalf("unexpected translation: %q", got)
	}
	SetLang("en")
}

func TestUnknownIDFallsBackToID(t *testing.T) {
	SetLang("en")
	if got := T("no.such.key"); got != "no.such.key" {
		t.Fatalf("expected fallback to message id, got %q", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	SetLang("fr")
	if got := T("validate.ok"); got != "Plan is valid." {
		t.Fatalf("unexpected translation: %q", got)
	}
	SetLang("en")
}
