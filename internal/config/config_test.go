package config

import (
	"os"
	"testing"
)

func TestCheckEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   []string
		setup     func()
		teardown  func()
		wantError bool
	}{
		{
			name:    "AllVariablesPresent",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
				os.Setenv("TEST_VAR_2", "value2")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
				os.Unsetenv("TEST_VAR_2")
			},
			wantError: false,
		},
		{
			name:    "OneVariableMissing",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "value1")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
		{
			name:    "VariablePresentButEmpty",
			envVars: []string{"TEST_VAR_1"},
			setup: func() {
				os.Setenv("TEST_VAR_1", "")
			},
			teardown: func() {
				os.Unsetenv("TEST_VAR_1")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			defer func() {
				if tt.teardown != nil {
					tt.teardown()
				}
			}()

			err := checkEnv(tt.envVars)
			if (err != nil) != tt.wantError {
				t.Errorf("checkEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateEnv(t *testing.T) {
	required := []string{"LOG_MODE", "SERVER_PORT", "DOWNLOAD_FOLDER", "MEDIA_API_URL"}

	tests := []struct {
		name      string
		setup     func()
		wantError bool
	}{
		{
			name: "AllRequiredVariablesPresent",
			setup: func() {
				os.Setenv("LOG_MODE", "dev")
				os.Setenv("SERVER_PORT", "8080")
				os.Setenv("DOWNLOAD_FOLDER", "/tmp/music")
				os.Setenv("MEDIA_API_URL", "https://api.example.com")
			},
			wantError: false,
		},
		{
			name: "MissingOneRequiredVariable",
			setup: func() {
				os.Setenv("LOG_MODE", "dev")
				os.Setenv("SERVER_PORT", "8080")
				os.Setenv("DOWNLOAD_FOLDER", "/tmp/music")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			defer func() {
				for _, name := range required {
					os.Unsetenv(name)
				}
			}()

			err := validateEnv()
			if (err != nil) != tt.wantError {
				t.Errorf("validateEnv() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		fallback int
		want     int
		wantErr  bool
	}{
		{
			name:     "ValidNumber",
			value:    "42",
			set:      true,
			fallback: 4,
			want:     42,
		},
		{
			name:     "UnsetUsesFallback",
			fallback: 4,
			want:     4,
		},
		{
			name:     "EmptyUsesFallback",
			value:    "",
			set:      true,
			fallback: 7,
			want:     7,
		},
		{
			name:    "InvalidNumber",
			value:   "not_a_number",
			set:     true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				os.Setenv("TEST_INT_VAR", tt.value)
				defer os.Unsetenv("TEST_INT_VAR")
			}

			got, err := envInt("TEST_INT_VAR", tt.fallback)
			if (err != nil) != tt.wantErr {
				t.Errorf("envInt() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("envInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		set      bool
		fallback bool
		want     bool
		wantErr  bool
	}{
		{
			name:  "True",
			value: "true",
			set:   true,
			want:  true,
		},
		{
			name:     "UnsetUsesFallback",
			fallback: true,
			want:     true,
		},
		{
			name:    "Invalid",
			value:   "maybe",
			set:     true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				os.Setenv("TEST_BOOL_VAR", tt.value)
				defer os.Unsetenv("TEST_BOOL_VAR")
			}

			got, err := envBool("TEST_BOOL_VAR", tt.fallback)
			if (err != nil) != tt.wantErr {
				t.Errorf("envBool() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("envBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	const testEnvContent = `LOG_MODE=dev
SERVER_PORT=8080
DOWNLOAD_FOLDER=/tmp/music
MEDIA_API_URL=https://api.example.com
CONCURRENCY_WORKERS=8
DOWNLOAD_OVERRIDE=true
`

	envFile, err := os.CreateTemp("", ".env")
	if err != nil {
		t.Fatalf("Failed to create temp .env file: %v", err)
	}
	defer os.Remove(envFile.Name())

	if _, err := envFile.WriteString(testEnvContent); err != nil {
		t.Fatalf("Failed to write to temp .env file: %v", err)
	}
	if err := envFile.Close(); err != nil {
		t.Fatalf("Failed to close temp .env file: %v", err)
	}

	defer func() {
		for _, name := range []string{
			"LOG_MODE", "SERVER_PORT", "DOWNLOAD_FOLDER", "MEDIA_API_URL",
			"CONCURRENCY_WORKERS", "DOWNLOAD_OVERRIDE",
		} {
			os.Unsetenv(name)
		}
	}()

	tests := []struct {
		name      string
		envFile   string
		want      *Config
		wantError bool
	}{
		{
			name:    "successful config load",
			envFile: envFile.Name(),
			want: &Config{
				LogMode:            "dev",
				ServerPort:         "8080",
				DownloadFolder:     "/tmp/music",
				MediaAPIURL:        "https://api.example.com",
				ConcurrencyWorkers: 8,
				DownloadOverride:   true,
				BitRate:            "MP3_320",
				MaxDownloadRetries: 5,
				MaxTasks:           1000,
			},
			wantError: false,
		},
		{
			name:      "missing env file",
			envFile:   "nonexistent_file",
			want:      nil,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(tt.envFile)
			if (err != nil) != tt.wantError {
				t.Errorf("LoadConfig() error = %v, wantError %v", err, tt.wantError)
				return
			}

			if !tt.wantError {
				if *got != *tt.want {
					t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
				}
			}
		})
	}
}
