package photos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("img"), 0644))
}

func TestFindBuildingPhotosSubdirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "Casa Consistorial", "fachada.jpg"))
	touch(t, filepath.Join(root, "Casa Consistorial", "sala_calderas.png"))
	touch(t, filepath.Join(root, "Casa Consistorial", "notas.txt"))
	touch(t, filepath.Join(root, "Polideportivo", "pista.jpg"))

	repo := &PhotoRepositoryImpl{}
	photos, err := repo.FindBuildingPhotos(root, "Casa Consistorial")
	require.NoError(t, err)

	require.Len(t, photos, 2)
	assert.Equal(t, "fachada", photos[0].Name)
	assert.Equal(t, "sala_calderas", photos[1].Name)
}

func TestFindBuildingPhotosLooseFilesByPrefix(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "Almacén municipal 01.jpg"))
	touch(t, filepath.Join(root, "almacen_municipal_02.jpeg"))
	touch(t, filepath.Join(root, "Polideportivo 01.jpg"))

	repo := &PhotoRepositoryImpl{}
	photos, err := repo.FindBuildingPhotos(root, "Almacén Municipal")
	require.NoError(t, err)

	// El prefijo se compara sin tildes y sin distinguir mayúsculas.
	require.Len(t, photos, 2)
	assert.Equal(t, "Almacén municipal 01", photos[0].Name)
}

func TestFindBuildingPhotosMissing(t *testing.T) {
	repo := &PhotoRepositoryImpl{}

	photos, err := repo.FindBuildingPhotos(t.TempDir(), "Sin Fotos")
	require.NoError(t, err)
	assert.Empty(t, photos)

	photos, err = repo.FindBuildingPhotos("", "Cualquiera")
	require.NoError(t, err)
	assert.Nil(t, photos)

	_, err = repo.FindBuildingPhotos(filepath.Join(t.TempDir(), "no-existe"), "Cualquiera")
	assert.Error(t, err)
}
