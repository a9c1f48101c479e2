package casing

import (
	"errors"
	"testing"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPascal string
		wantLower  string
		wantUpper  string
		wantSnake  string
	}{
		{
			name:       "pascal case input",
			input:      "UserProfile",
			wantPascal: "UserProfile",
			wantLower:  "userprofile",
			wantUpper:  "USER_PROFILE",
			wantSnake:  "user_profile",
		},
		{
			name:       "single word",
			input:      "Login",
			wantPascal: "Login",
			wantLower:  "login",
			wantUpper:  "LOGIN",
			wantSnake:  "login",
		},
		{
			name:       "lowercase input",
			input:      "settings",
			wantPascal: "Settings",
			wantLower:  "settings",
			wantUpper:  "SETTINGS",
			wantSnake:  "settings",
		},
		{
			name:       "snake case input",
			input:      "user_profile",
			wantPascal: "UserProfile",
			wantLower:  "userprofile",
			wantUpper:  "USER_PROFILE",
			wantSnake:  "user_profile",
		},
		{
			name:       "digits stay with their word",
			input:      "OAuth2Login",
			wantPascal: "Oauth2Login",
			wantLower:  "oauth2login",
			wantUpper:  "OAUTH2_LOGIN",
			wantSnake:  "oauth2_login",
		},
		{
			name:       "mixed underscore and camel",
			input:      "My_Feature2Name",
			wantPascal: "MyFeature2Name",
			wantLower:  "myfeature2name",
			wantUpper:  "MY_FEATURE2_NAME",
			wantSnake:  "my_feature2_name",
		},
		{
			name:       "three words",
			input:      "OrderHistoryDetail",
			wantPascal: "OrderHistoryDetail",
			wantLower:  "orderhistorydetail",
			wantUpper:  "ORDER_HISTORY_DETAIL",
			wantSnake:  "order_history_detail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.input)
			if err != nil {
				t.Fatalf("Derive(%q) error = %v", tt.input, err)
			}
			if got.Original != tt.input {
				t.Errorf("Original = %q, want %q", got.Original, tt.input)
			}
			if got.Pascal != tt.wantPascal {
				t.Errorf("Pascal = %q, want %q", got.Pascal, tt.wantPascal)
			}
			if got.Lower != tt.wantLower {
				t.Errorf("Lower = %q, want %q", got.Lower, tt.wantLower)
			}
			if got.Upper != tt.wantUpper {
				t.Errorf("Upper = %q, want %q", got.Upper, tt.wantUpper)
			}
			if got.Snake != tt.wantSnake {
				t.Errorf("Snake = %q, want %q", got.Snake, tt.wantSnake)
			}
		})
	}
}

func TestDerive_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"space", "User Profile"},
		{"dash", "user-profile"},
		{"dot", "user.profile"},
		{"unicode", "Prøfile"},
		{"underscores only", "___"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Derive(tt.input); !errors.Is(err, ErrInvalidName) {
				t.Errorf("Derive(%q) error = %v, want ErrInvalidName", tt.input, err)
			}
		})
	}
}

// Deriving the same name twice must yield identical contexts; the variants
// are embedded into many generated files within a single run.
func TestDerive_Deterministic(t *testing.T) {
	inputs := []string{"UserProfile", "order_history", "OAuth2Login"}
	for _, input := range inputs {
		first, err := Derive(input)
		if err != nil {
			t.Fatalf("Derive(%q) error = %v", input, err)
		}
		second, err := Derive(input)
		if err != nil {
			t.Fatalf("Derive(%q) second call error = %v", input, err)
		}
		if first != second {
			t.Errorf("Derive(%q) not deterministic: %+v != %+v", input, first, second)
		}
	}
}
