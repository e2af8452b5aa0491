// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCount formats n with the digit grouping of tag, e.g. "12,000" in English.
func FormatCount(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}

// ParseLocale parses a BCP 47 tag such as "en-US" or "de".
// Empty or malformed tags yield English.
func ParseLocale(s string) language.Tag {
	if s == "" {
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}
