package errors

import "testing"

func TestValidateSectionName(t *testing.T) {
	tests := []struct {
		name    string
		section string
		wantErr bool
	}{
		{"dependencies", "dependencies", false},
		{"devDependencies", "devDependencies", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"control char", "deps\n", true},
		{"nested", "workspaces.packages", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSectionName(tt.section)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSectionName(%q) error = %v, wantErr %v", tt.section, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("error code = %q, want %q", GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"stats.json", false},
		{"out/graph.svg", false},
		{"/tmp/stats.json", false},
		{"", true},
		{"out/", true},
		{"bad\x00name", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateChoice(t *testing.T) {
	if err := ValidateChoice("format", "json", "text", "json"); err != nil {
		t.Errorf("ValidateChoice(json) = %v, want nil", err)
	}

	err := ValidateChoice("format", "yaml", "text", "json")
	if err == nil {
		t.Fatal("ValidateChoice(yaml) = nil, want error")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("code = %q, want %q", GetCode(err), ErrCodeInvalidFormat)
	}
	want := `unsupported format "yaml" (available: text, json)`
	if UserMessage(err) != want {
		t.Errorf("message = %q, want %q", UserMessage(err), want)
	}
}
