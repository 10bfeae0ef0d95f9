package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCalc(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunArgs(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"single", []string{"2+2*2"}, "6\n"},
		{"joined", []string{"2", "+", "(2*2+2)/2"}, "5\n"},
		{"neg", []string{"-3/-2"}, "1.5\n"},
		{"separators", []string{"2.5+2,5"}, "5\n"},
		{"div-zero", []string{"1/0"}, "+Inf\n"},
		{"unknown", []string{"5!"}, "ERROR: 2: unknown character \"!\"\n"},
		{"brackets", []string{"(2+2"}, "ERROR: 1: unbalanced brackets \"(\"\n"},
		{"unary", []string{"2--"}, "ERROR: 3: invalid unary operator \"-\"\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, _, code := runCalc(t, "", c.args...)
			assert.Equal(t, 0, code)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestRunStdin(t *testing.T) {
	out, _, code := runCalc(t, "2+2\n\n2-2/2\n2^2\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "4\n1\nERROR: 2: unknown character \"^\"\n", out)
}

func TestRunInputFile(t *testing.T) {
	path := writeFile(t, "exprs.txt", "(((2+2*2)/2+8)-1)*2\n2+(10-2*2)/3+6+(5*2-3)\n")
	out, _, code := runCalc(t, "ignored", "-in", path)
	assert.Equal(t, 0, code)
	assert.Equal(t, "20\n17\n", out)

	_, stderr, code := runCalc(t, "", "-in", filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to open input")
}

func TestRunInputFileWithArgs(t *testing.T) {
	path := writeFile(t, "exprs.txt", "1+1\n")
	out, stderr, code := runCalc(t, "", "-in", path, "2+2")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "cannot be combined")
}

func TestRunFormatAndEcho(t *testing.T) {
	out, _, code := runCalc(t, "", "-fmt", "%.3f", "-echo", "2/3")
	assert.Equal(t, 0, code)
	assert.Equal(t, "2 3 / : 0.667\n", out)
}

func TestRunConfig(t *testing.T) {
	path := writeFile(t, "calc.yaml", "format: \"%.2f\"\necho: true\n")
	out, _, code := runCalc(t, "", "-config", path, "1/4")
	assert.Equal(t, 0, code)
	assert.Equal(t, "1 4 / : 0.25\n", out)

	// Flags override the file.
	out, _, code = runCalc(t, "", "-config", path, "-fmt", "%g", "-echo=false", "1/4")
	assert.Equal(t, 0, code)
	assert.Equal(t, "0.25\n", out)
}

func TestRunBadConfig(t *testing.T) {
	path := writeFile(t, "bad.yaml", "format: [\n")
	out, stderr, code := runCalc(t, "", "-config", path, "1")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "failed to load config")

	_, _, code = runCalc(t, "", "-fmt", "plain", "1")
	assert.Equal(t, 1, code)

	_, _, code = runCalc(t, "", "-no-such-flag")
	assert.Equal(t, 2, code)
}

func TestRunDebugLog(t *testing.T) {
	_, stderr, code := runCalc(t, "", "-log-level", "debug", "-3/2")
	assert.Equal(t, 0, code)
	for _, msg := range []string{"tokenized", "normalized", "converted", "evaluated"} {
		assert.Contains(t, stderr, msg)
	}

	_, stderr, _ = runCalc(t, "", "1+1")
	assert.NotContains(t, stderr, "tokenized")
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "calc.yaml", "log-level: debug\n")
	cfg, err := loadConfig(path, defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, config{Format: "%g", LogLevel: "debug"}, cfg)

	path = writeFile(t, "empty-format.yaml", "format: \"\"\n")
	_, err = loadConfig(path, defaultConfig())
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), defaultConfig())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
