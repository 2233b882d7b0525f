// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"
)

func TestValidateWebsiteName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "My Site", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "at limit", input: strings.Repeat("a", 200), wantErr: false},
		{name: "over limit", input: strings.Repeat("a", 201), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validateWebsiteName(tt.input)
			if (got != "") != tt.wantErr {
				t.Errorf("validateWebsiteName(%q) = %q, wantErr %v", tt.input, got, tt.wantErr)
			}
		})
	}
}

func TestValidatePageFields(t *testing.T) {
	longSlug := strings.Repeat("s", 301)
	tests := []struct {
		name    string
		title   string
		slug    string
		wantErr bool
	}{
		{name: "valid", title: "About", slug: "/about", wantErr: false},
		{name: "empty title", title: " ", slug: "/about", wantErr: true},
		{name: "empty slug", title: "About", slug: "", wantErr: true},
		{name: "long slug", title: "About", slug: longSlug, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validatePageFields(tt.title, tt.slug)
			if (got != "") != tt.wantErr {
				t.Errorf("validatePageFields(%q, %q) = %q", tt.title, tt.slug, got)
			}
		})
	}
}

func TestValidatePagePatch(t *testing.T) {
	blank := "  "
	ok := "/fine"
	if msg := validatePagePatch(nil, nil); msg != "" {
		t.Errorf("empty patch: %q", msg)
	}
	if msg := validatePagePatch(nil, &blank); msg == "" {
		t.Error("blank slug accepted")
	}
	if msg := validatePagePatch(&blank, &ok); msg == "" {
		t.Error("blank title accepted")
	}
	if msg := validatePagePatch(nil, &ok); msg != "" {
		t.Errorf("valid slug rejected: %q", msg)
	}
}

func TestValidateComponentFields(t *testing.T) {
	bigCode := strings.Repeat("x", 100_001)
	if msg := validateComponentFields("Hero", "function Hero() {}"); msg != "" {
		t.Errorf("valid component rejected: %q", msg)
	}
	if msg := validateComponentFields("", "function Hero() {}"); msg == "" {
		t.Error("empty name accepted")
	}
	if msg := validateComponentFields("Hero", bigCode); msg == "" {
		t.Error("oversized code accepted")
	}
}

func TestValidateMediaFields(t *testing.T) {
	longAlt := strings.Repeat("a", 1_001)
	if msg := validateMediaFields("banner.png", nil, nil); msg != "" {
		t.Errorf("valid media rejected: %q", msg)
	}
	if msg := validateMediaFields("banner.png", &longAlt, nil); msg == "" {
		t.Error("oversized alt text accepted")
	}
}
