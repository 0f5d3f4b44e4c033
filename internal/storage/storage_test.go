package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

// writeFile creates a file under dir, making parent directories as needed.
func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// openWorkspace builds a Storage over a populated temp dir.
func openWorkspace(t *testing.T, dir string) *Storage {
	t.Helper()
	s, err := Open(dir, nil)
	require.NoError(t, err)
	return s
}

func TestOpen(t *testing.T) {
	t.Run("missing directory fails", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "nope"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("file instead of directory fails", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "plain.txt", "x")
		_, err := Open(path, nil)
		require.Error(t, err)
	})

	t.Run("open resolves the root and loads config", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".locmanconfig.yaml", "color: never\n")

		s := openWorkspace(t, dir)
		assert.True(t, filepath.IsAbs(s.Root()))
		assert.Equal(t, "never", s.Config().Color)
	})
}

func TestScan(t *testing.T) {
	t.Run("classifies resource files and cultures", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".locman.yaml", "project: App\n")
		writeFile(t, dir, "res/Strings.strings.yaml", "Greeting: Hello\n")
		writeFile(t, dir, "res/Strings.de.strings.yaml", "Greeting: Hallo\n")
		writeFile(t, dir, "res/Sprite.atlas.strings.yaml", "K: v\n")
		writeFile(t, dir, "res/notes.yaml", "just: yaml\n")
		writeFile(t, dir, "res/readme.txt", "text\n")

		s := openWorkspace(t, dir)
		files, err := s.Scan()
		require.NoError(t, err)
		require.Len(t, files, 4) // every yaml candidate, resource or not

		byPath := make(map[string]*ScannedFile)
		for _, f := range files {
			byPath[filepath.Base(f.Path())] = f
		}

		neutral := byPath["Strings.strings.yaml"]
		require.NotNil(t, neutral)
		assert.True(t, neutral.IsResourceFile())
		assert.Equal(t, "Strings", neutral.BaseName())
		assert.True(t, neutral.CultureKey().IsNeutral())
		assert.Equal(t, "App", neutral.ProjectName())

		de := byPath["Strings.de.strings.yaml"]
		require.NotNil(t, de)
		assert.Equal(t, "Strings", de.BaseName())
		assert.Equal(t, culture.Key("de"), de.CultureKey())

		// An unknown middle segment stays part of the base name.
		atlas := byPath["Sprite.atlas.strings.yaml"]
		require.NotNil(t, atlas)
		assert.True(t, atlas.IsResourceFile())
		assert.Equal(t, "Sprite.atlas", atlas.BaseName())
		assert.True(t, atlas.CultureKey().IsNeutral())

		notes := byPath["notes.yaml"]
		require.NotNil(t, notes)
		assert.False(t, notes.IsResourceFile())
	})

	t.Run("nearest marker wins", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".locman.yaml", "project: Outer\n")
		writeFile(t, dir, "lib/.locman.yaml", "project: Inner\n")
		writeFile(t, dir, "Top.strings.yaml", "K: v\n")
		writeFile(t, dir, "lib/Lib.strings.yaml", "K: v\n")
		writeFile(t, dir, "lib/sub/Deep.strings.yaml", "K: v\n")

		s := openWorkspace(t, dir)
		files, err := s.Scan()
		require.NoError(t, err)

		projects := make(map[string]string)
		for _, f := range files {
			projects[filepath.Base(f.Path())] = f.ProjectName()
		}
		assert.Equal(t, "Outer", projects["Top.strings.yaml"])
		assert.Equal(t, "Inner", projects["Lib.strings.yaml"])
		assert.Equal(t, "Inner", projects["Deep.strings.yaml"])
	})

	t.Run("files outside any marker have no project", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "Loose.strings.yaml", "K: v\n")

		s := openWorkspace(t, dir)
		files, err := s.Scan()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Empty(t, files[0].ProjectName())
	})

	t.Run("dot directories are not descended into", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".locman.yaml", "project: App\n")
		writeFile(t, dir, ".git/objects/Strings.strings.yaml", "K: v\n")
		writeFile(t, dir, "Real.strings.yaml", "K: v\n")

		s := openWorkspace(t, dir)
		files, err := s.Scan()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "Real", files[0].BaseName())
	})

	t.Run("broken marker is ignored", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".locman.yaml", "project: [broken\n")
		writeFile(t, dir, "Strings.strings.yaml", "K: v\n")

		s := openWorkspace(t, dir)
		files, err := s.Scan()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Empty(t, files[0].ProjectName())
	})

	t.Run("neutral_culture remaps suffix-less files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".locmanconfig.yaml", "neutral_culture: en\n")
		writeFile(t, dir, ".locman.yaml", "project: App\n")
		writeFile(t, dir, "Strings.strings.yaml", "K: v\n")

		s := openWorkspace(t, dir)
		files, err := s.Scan()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, culture.Key("en"), files[0].CultureKey())
	})
}

func TestScannedFileRead(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".locman.yaml", "project: App\n")
	writeFile(t, dir, "Strings.strings.yaml", "Greeting: Hello\nFarewell: Goodbye\n")

	s := openWorkspace(t, dir)
	files, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)

	table, err := files[0].Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Greeting", "Farewell"}, table.Keys())
	v, ok := table.Get("Farewell")
	assert.True(t, ok)
	assert.Equal(t, "Goodbye", v)
}

func TestLanguagePath(t *testing.T) {
	dir := t.TempDir()
	s := openWorkspace(t, dir)

	key := model.EntityKey{Project: "App", BaseName: "Strings", Directory: filepath.Join(dir, "res")}

	assert.Equal(t,
		filepath.Join(dir, "res", "Strings.strings.yaml"),
		s.LanguagePath(key, culture.Neutral))
	assert.Equal(t,
		filepath.Join(dir, "res", "Strings.de-DE.strings.yaml"),
		s.LanguagePath(key, culture.MustParse("de-DE")))
}

func TestSaveLanguage(t *testing.T) {
	t.Run("round trips through the scanner", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".locman.yaml", "project: App\n")
		s := openWorkspace(t, dir)

		l := model.NewLanguage("de", filepath.Join(dir, "Strings.de.strings.yaml"))
		l.Table.Set("Greeting", "Hallo")
		l.Table.Set("Multi", "eins\nzwei\n")

		require.NoError(t, s.SaveLanguage(l))

		files, err := s.Scan()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, culture.Key("de"), files[0].CultureKey())

		table, err := files[0].Read()
		require.NoError(t, err)
		v, _ := table.Get("Multi")
		assert.Equal(t, "eins\nzwei\n", v)
	})

	t.Run("language without a path fails", func(t *testing.T) {
		s := openWorkspace(t, t.TempDir())
		l := model.NewLanguage("de", "")
		require.Error(t, s.SaveLanguage(l))
	})
}

func TestWriteMarker(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteMarker(dir, "App"))

	project, err := readMarker(filepath.Join(dir, ".locman.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "App", project)

	// A second marker in the same directory is refused.
	err = WriteMarker(dir, "Other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.Error(t, WriteMarker(dir, ""))
}
