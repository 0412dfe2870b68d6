package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogYAML = `bootVersion: 1.5.2.RELEASE
dependencies:
  - name: Security
    content:
      - id: security
        groupId: org.springframework.boot
        artifactId: spring-boot-starter-security
`

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "Success with valid catalog",
			args:         []string{"starter", "generate", "-d", "security", "-o", "pom.xml"},
			expectedExit: 0,
		},
		{
			name:         "Unknown dependency",
			args:         []string{"starter", "generate", "-d", "lombok", "-o", "pom.xml"},
			expectedExit: 1,
		},
		{
			name:         "Missing catalog",
			args:         []string{"starter", "rules", "-m", "missing.yaml"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "starter.yaml"), []byte(catalogYAML), 0o600))

			t.Chdir(tmpDir)

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_WritesStoreAndBuildFile(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "starter.yaml"), []byte(catalogYAML), 0o600))
	t.Chdir(tmpDir)

	os.Args = []string{"starter", "generate", "-b", "1.3.0.RELEASE", "-d", "security", "-f", "gradle", "-o", "build.gradle"}
	require.Equal(t, 0, run())

	data, err := os.ReadFile(filepath.Join(tmpDir, "build.gradle"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "testImplementation 'org.springframework.security:spring-security-test'")

	entries, err := os.ReadDir(filepath.Join(tmpDir, ".starter", "store"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
