package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunStdinDecimalOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := run(nil, strings.NewReader("a"), &stdout, &stderr)
	require.Equal(t, 0, rc)
	require.Empty(t, stderr.String())
	require.Equal(t, "1220704766 1\n", stdout.String())
}

func TestRunStdinTagged(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := run([]string{"--tag"}, strings.NewReader("a"), &stdout, &stderr)
	require.Equal(t, 0, rc)
	require.Equal(t, "CRC (standard input) = 1220704766 1\n", stdout.String())
}

func TestRunStdinRaw(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := run([]string{"-r"}, strings.NewReader("a"), &stdout, &stderr)
	require.Equal(t, 0, rc)
	require.Equal(t, []byte{0x48, 0xC2, 0x79, 0xFE}, stdout.Bytes())
}

func TestRunMissingFileReportsErrorAndNonZeroExit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := run([]string{"/nonexistent/path/for/cksum/test"}, nil, &stdout, &stderr)
	require.NotEqual(t, 0, rc)
	require.Contains(t, stderr.String(), "/nonexistent/path/for/cksum/test")
}

func TestRunRejectsUnsupportedAlgorithm(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := run([]string{"-a", "md5"}, strings.NewReader("a"), &stdout, &stderr)
	require.NotEqual(t, 0, rc)
	require.Contains(t, stderr.String(), "md5")
}

func TestRunEmptyFileMatchesKnownConstant(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := run(nil, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, rc)
	require.Equal(t, "4294967295 0\n", stdout.String())
}
