package scaffold

import (
	"testing"

	"github.com/gorewood/mason/internal/casing"
)

func TestExpand(t *testing.T) {
	tokens := map[string]string{
		"FEATURE_NAME":  "UserProfile",
		"FEATURE_LOWER": "userprofile",
		"PACKAGE":       "com.acme.app",
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single token",
			input: "class {{FEATURE_NAME}}ViewModel",
			want:  "class UserProfileViewModel",
		},
		{
			name:  "repeated token",
			input: "{{FEATURE_LOWER}}/{{FEATURE_LOWER}}.kt",
			want:  "userprofile/userprofile.kt",
		},
		{
			name:  "multiple tokens on one line",
			input: "package {{PACKAGE}}.{{FEATURE_LOWER}}",
			want:  "package com.acme.app.userprofile",
		},
		{
			name:  "unknown token passes through",
			input: "val x = {{FUTURE_TOKEN}}",
			want:  "val x = {{FUTURE_TOKEN}}",
		},
		{
			name:  "no tokens is identity",
			input: "plain text with no markers",
			want:  "plain text with no markers",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "lone braces untouched",
			input: "if (x) { y() }",
			want:  "if (x) { y() }",
		},
		{
			name:  "unterminated marker untouched",
			input: "broken {{FEATURE_NAME",
			want:  "broken {{FEATURE_NAME",
		},
		{
			name:  "known next to unknown",
			input: "{{FEATURE_NAME}}{{UNKNOWN}}{{FEATURE_NAME}}",
			want:  "UserProfile{{UNKNOWN}}UserProfile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.input, tokens); got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// A token that is a prefix of a longer registered token must not clip it.
func TestExpand_LongestTokenWins(t *testing.T) {
	tokens := map[string]string{
		"FEATURE":       "short",
		"FEATURE_LOWER": "long",
	}

	got := Expand("{{FEATURE_LOWER}} and {{FEATURE}}", tokens)
	want := "long and short"
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

// Replacement values are never rescanned: a value containing a marker-like
// string survives a second pass unchanged.
func TestExpand_NoReExpansion(t *testing.T) {
	tokens := map[string]string{
		"NAME": "literal {{OTHER}} text",
	}

	once := Expand("a {{NAME}} b", tokens)
	want := "a literal {{OTHER}} text b"
	if once != want {
		t.Fatalf("Expand() = %q, want %q", once, want)
	}

	// OTHER is not registered, so a second pass is the identity.
	twice := Expand(once, tokens)
	if twice != once {
		t.Errorf("second Expand() = %q, want unchanged %q", twice, once)
	}
}

func TestTokens(t *testing.T) {
	ctx, err := casing.Derive("UserProfile")
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	tokens := Tokens(ctx, "com.acme.app")

	want := map[string]string{
		"FEATURE_NAME":  "UserProfile",
		"FEATURE_LOWER": "userprofile",
		"FEATURE_UPPER": "USER_PROFILE",
		"FEATURE_SNAKE": "user_profile",
		"PACKAGE":       "com.acme.app",
		"PACKAGE_PATH":  "com/acme/app",
	}
	for name, wantValue := range want {
		if tokens[name] != wantValue {
			t.Errorf("Tokens()[%q] = %q, want %q", name, tokens[name], wantValue)
		}
	}
}
