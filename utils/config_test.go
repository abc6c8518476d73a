package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	config, err := NewConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, "sqlite", config.Database.Driver)
	assert.Equal(t, "tagbox", config.Sqlite.Filename)
	assert.Equal(t, "uploads", config.Uploads.Dir)
}

func TestNewConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
database:
  driver: mysql
mysql:
  dsn: user:pass@tcp(localhost:3306)/tagbox
uploads:
  dir: /var/lib/tagbox/uploads
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "mysql", config.Database.Driver)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/tagbox", config.Mysql.DSN)
	assert.Equal(t, "/var/lib/tagbox/uploads", config.Uploads.Dir)
	// untouched keys keep their defaults
	assert.Equal(t, "tagbox", config.Sqlite.Filename)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateConfigPath(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, ValidateConfigPath(dir), "a directory is not a config file")

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"1\"\n"), 0644))
	assert.NoError(t, ValidateConfigPath(path))
}
