package outputs

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfinv/pkg/errors"
	"tfinv/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	os.Exit(m.Run())
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outputs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTemp(t, `{
		"instance_public_ips": {"value": ["1.2.3.4", "5.6.7.8"]},
		"rds_endpoint": {"value": "db.example.com:5432"},
		"environment_info": {"value": {"project_name": "shop", "environment": "prod"}}
	}`)

	out, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"1.2.3.4", "5.6.7.8"}, out.StringList("instance_public_ips"))
	assert.Equal(t, "db.example.com:5432", out.String("rds_endpoint", ""))
	assert.Equal(t, "shop", out.MapString("environment_info", "project_name", "myapp"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindNotFound))
	assert.False(t, errors.IsKind(err, errors.KindMalformedInput))
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeTemp(t, `{"instance_public_ips": [`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindMalformedInput))
}

func TestAccessorDefaults(t *testing.T) {
	out := Outputs{
		"rds_endpoint": {Value: "db:5432"},
		"mixed_list":   {Value: []interface{}{"a", float64(2)}},
		"not_a_list":   {Value: "scalar"},
		"not_a_map":    {Value: "scalar"},
	}

	assert.Equal(t, "db:5432", out.String("rds_endpoint", "fallback"))
	assert.Equal(t, "fallback", out.String("absent", "fallback"))
	assert.Equal(t, "appdb", out.String("not_a_list_either", "appdb"))

	assert.Nil(t, out.StringList("absent"))
	assert.Nil(t, out.StringList("not_a_list"))
	assert.Equal(t, []string{"a", "2"}, out.StringList("mixed_list"))

	assert.Nil(t, out.Map("absent"))
	assert.Nil(t, out.Map("not_a_map"))
	assert.Equal(t, "dev", out.MapString("absent", "environment", "dev"))
}

func TestAtPadding(t *testing.T) {
	list := []string{"x", "y"}

	assert.Equal(t, "x", At(list, 0))
	assert.Equal(t, "y", At(list, 1))
	assert.Equal(t, "", At(list, 2))
	assert.Equal(t, "", At(nil, 0))
	assert.Equal(t, "", At(list, -1))
}
