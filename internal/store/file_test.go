package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/rostr/internal/model"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "students.json"))
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	s := tempStore(t)

	students, skipped, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, students)
	require.Zero(t, skipped)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	ana, err := model.NewStudent("ana", 20, 15.5)
	require.NoError(t, err)

	require.NoError(t, s.Save([]model.Student{ana}))

	students, skipped, err := s.Load()
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Equal(t, []model.Student{{Name: "Ana", Age: 20, Grade: 15.5}}, students)
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("not json at all"), 0o644))

	_, _, err := s.Load()

	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
	require.Equal(t, s.Path(), corrupt.Path)
}

func TestFileStore_LoadNotAList(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"name":"Ana","age":20,"grade":15.5}`), 0o644))

	_, _, err := s.Load()

	var corrupt *CorruptError
	require.ErrorAs(t, err, &corrupt)
}

func TestFileStore_LoadRejectsMalformedEntries(t *testing.T) {
	s := tempStore(t)

	raw := `[
    {"name": "Ana", "age": 20, "grade": 15.5},
    {"name": "NoAge", "grade": 10},
    {"name": 42, "age": 20, "grade": 10},
    "not an object",
    {"name": "Bruno", "age": 21, "grade": 18}
]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	students, skipped, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, 3, skipped)
	require.Equal(t, []model.Student{
		{Name: "Ana", Age: 20, Grade: 15.5},
		{Name: "Bruno", Age: 21, Grade: 18},
	}, students)
}

func TestFileStore_LoadKeepsOutOfRangeValues(t *testing.T) {
	// Constraints hold at write time only; a hand-edited file may violate
	// them and still loads as-is.
	s := tempStore(t)

	raw := `[{"name": "", "age": 500, "grade": 99.9}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	students, skipped, err := s.Load()
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Equal(t, []model.Student{{Name: "", Age: 500, Grade: 99.9}}, students)
}

func TestFileStore_SaveWritesStableShape(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save([]model.Student{{Name: "Ana", Age: 20, Grade: 18}}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	text := string(data)
	require.Contains(t, text, "\n    {\n")
	require.Contains(t, text, `"name": "Ana"`)
	require.Contains(t, text, `"age": 20`)
	require.Contains(t, text, `"grade": 18`)
}

func TestFileStore_SaveNilRoster(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save(nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save([]model.Student{
		{Name: "Ana", Age: 20, Grade: 15.5},
		{Name: "Bruno", Age: 21, Grade: 18},
	}))
	require.NoError(t, s.Save([]model.Student{{Name: "Carla", Age: 22, Grade: 12}}))

	students, _, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, []model.Student{{Name: "Carla", Age: 22, Grade: 12}}, students)
}
