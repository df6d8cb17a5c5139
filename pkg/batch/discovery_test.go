package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/latexmark/pkg/batch"
)

func TestDiscover_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	texFile := filepath.Join(dir, "main.tex")
	if err := os.WriteFile(texFile, []byte(`\documentclass{article}`), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	opts := batch.Options{
		Paths:      []string{texFile},
		WorkingDir: dir,
	}

	files, err := batch.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if files[0] != texFile {
		t.Errorf("expected %s, got %s", texFile, files[0])
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := []string{
		"main.tex",
		"chapters/intro.tex",
		"chapters/notes.txt",
		"figures/plot.png",
	}
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}

	ctx := context.Background()
	opts := batch.Options{Paths: []string{"."}, WorkingDir: dir}

	discovered, err := batch.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "chapters/intro.tex"),
		filepath.Join(dir, "main.tex"),
	}

	if len(discovered) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(discovered), discovered)
	}
	for i, exp := range expected {
		if discovered[i] != exp {
			t.Errorf("file[%d] = %s, want %s", i, discovered[i], exp)
		}
	}
}

func TestDiscover_DefaultsToCurrentDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	texFile := filepath.Join(dir, "doc.tex")
	if err := os.WriteFile(texFile, []byte("content"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	opts := batch.Options{Paths: nil, WorkingDir: dir}

	files, err := batch.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	testFiles := []string{"doc.tex", "doc.sty", "doc.cls", "doc.bib"}
	for _, f := range testFiles {
		path := filepath.Join(dir, f)
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	ctx := context.Background()
	opts := batch.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Extensions: []string{".sty", ".cls"},
	}

	discovered, err := batch.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(discovered) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(discovered), discovered)
	}
	for _, f := range discovered {
		ext := filepath.Ext(f)
		if ext != ".sty" && ext != ".cls" {
			t.Errorf("unexpected file extension: %s", f)
		}
	}
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := []string{
		"main.tex",
		"build/main.tex",
		"_minted-main/cache.tex",
		"chapters/intro.tex",
	}
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}

	ctx := context.Background()
	opts := batch.Options{
		Paths:        []string{"."},
		WorkingDir:   dir,
		ExcludeGlobs: []string{"build/**", "_minted-main/**"},
	}

	discovered, err := batch.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	expected := []string{
		filepath.Join(dir, "chapters/intro.tex"),
		filepath.Join(dir, "main.tex"),
	}
	if len(discovered) != len(expected) {
		t.Fatalf("expected %d files, got %d: %v", len(expected), len(discovered), discovered)
	}
}

func TestDiscover_HiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	files := []string{
		"main.tex",
		".hidden.tex",
		".git/config.tex",
	}
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}

	ctx := context.Background()
	opts := batch.Options{Paths: []string{"."}, WorkingDir: dir}

	discovered, err := batch.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(discovered) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(discovered), discovered)
	}
	if filepath.Base(discovered[0]) != "main.tex" {
		t.Errorf("expected main.tex, got %s", filepath.Base(discovered[0]))
	}
}

func TestDiscover_NonExistentPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	ctx := context.Background()
	opts := batch.Options{Paths: []string{"nonexistent"}, WorkingDir: dir}

	_, err := batch.Discover(ctx, opts)
	if err == nil {
		t.Fatal("expected error for non-existent path")
	}
}

func TestDiscover_Deduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	texFile := filepath.Join(dir, "main.tex")
	if err := os.WriteFile(texFile, []byte("content"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	ctx := context.Background()
	opts := batch.Options{
		Paths:      []string{"main.tex", "./main.tex", "main.tex"},
		WorkingDir: dir,
	}

	files, err := batch.Discover(ctx, opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file (deduplicated), got %d: %v", len(files), files)
	}
}
