package embedded

import (
	"testing"
	"testing/fstest"
)

func resetForTest(t *testing.T) {
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

func TestNotInitialized(t *testing.T) {
	resetForTest(t)
	Init(nil)

	if IsInitialized() {
		t.Error("IsInitialized() should be false before Init")
	}
	if _, err := ReadFile("data/tuning.yaml"); err == nil {
		t.Error("ReadFile() should fail before Init")
	}
	if Exists("data/tuning.yaml") {
		t.Error("Exists() should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/tuning.yaml": &fstest.MapFile{Data: []byte("wave:\n  speed: 100\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "data/tuning.yaml", false},
		{"dot prefix", "./data/tuning.yaml", false},
		{"missing file", "data/missing.yaml", true},
		{"invalid prefix", "assets/tuning.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}

	if !Exists("data/tuning.yaml") {
		t.Error("Exists() should find data/tuning.yaml")
	}
}
