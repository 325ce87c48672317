package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
part_size_percent_of_world: 35
bounding_box_weight: 0.7
num_of_parts_weight: 0.3
three_d: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 35, cfg.PartSizePercentOfWorld)
	require.InDelta(t, 0.7, cfg.BoundingBoxWeight, 1e-9)
	require.InDelta(t, 0.3, cfg.NumOfPartsWeight, 1e-9)
	require.True(t, cfg.ThreeD)
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("part_size_percent_of_world: 0\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate_RejectsBadWeights(t *testing.T) {
	cfg := Default()
	cfg.BoundingBoxWeight = 0.5
	cfg.NumOfPartsWeight = 0.2
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
