package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Cleanup(Reset)

	assert.Equal(t, 16, C.TileSize)
	assert.Equal(t, 500, C.Width)
	assert.Equal(t, 500, C.Height)
	assert.NoError(t, Validate())
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := `
scene:
  width: 320
hero:
  speed: 3.5
debug:
  showHitBoxes: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	require.NoError(t, Load(path))

	assert.Equal(t, 320, C.Width)
	assert.Equal(t, 500, C.Height)
	assert.Equal(t, 16, C.TileSize)
	assert.Equal(t, 3.5, Hero.Speed)
	assert.Equal(t, 100, Hero.Health)
	assert.True(t, Debug.ShowHitBoxes)
	assert.Equal(t, Magenta, Debug.HitBoxColor)
}

func TestLoadMissingCustomPath(t *testing.T) {
	t.Cleanup(Reset)

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMissingDefaultIsIgnored(t *testing.T) {
	t.Cleanup(Reset)
	t.Chdir(t.TempDir())

	assert.NoError(t, Load(""))
	assert.Equal(t, 16, C.TileSize)
}

func TestApplyRejectsInvalid(t *testing.T) {
	t.Cleanup(Reset)

	assert.Error(t, Apply([]byte("scene:\n  tileSize: 0\n")))
	assert.Error(t, Apply([]byte("scene: [")))
}
