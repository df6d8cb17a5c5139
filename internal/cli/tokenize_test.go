package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/latexmark/internal/cli"
)

func TestTokenizeCommand_FormatFlagDefault(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}

	cmd := cli.NewRootCommand(info)
	tokenizeCmd, _, err := cmd.Find([]string{"tokenize"})
	if err != nil {
		t.Fatalf("tokenize command not found: %v", err)
	}

	flag := tokenizeCmd.Flags().Lookup("format")
	assert.NotNil(t, flag, "format flag should exist")
	assert.Equal(t, "text", flag.DefValue, "default format should be text")
}

func TestTokenizeCommand_GroupByFileDefaultsTrue(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}

	cmd := cli.NewRootCommand(info)
	tokenizeCmd, _, err := cmd.Find([]string{"tokenize"})
	if err != nil {
		t.Fatalf("tokenize command not found: %v", err)
	}

	flag := tokenizeCmd.Flags().Lookup("group-by-file")
	assert.NotNil(t, flag)
	assert.Equal(t, "true", flag.DefValue)
}
