package store_test

import (
	"os"
	"testing"

	"github.com/calvinalkan/jane/internal/todo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Check_Valid_Database(t *testing.T) {
	t.Parallel()

	db, _ := newDB(t)
	require.NoError(t, db.Write([]todo.Task{
		{Description: "a", Priority: 1},
		{Description: "b", Priority: 3, Done: true},
	}))

	result, err := db.Check()

	require.NoError(t, err)
	assert.True(t, result.Valid())
	assert.Equal(t, 2, result.Tasks)
}

func Test_Check_Reports_Violations(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name         string
		content      string
		wantLocation string
	}{
		{
			name:         "priority out of range",
			content:      `[{"Description": "a", "Priority": 7, "Done": false}]`,
			wantLocation: "/0/Priority",
		},
		{
			name:         "fractional priority",
			content:      `[{"Description": "a", "Priority": 1.5, "Done": false}]`,
			wantLocation: "/0/Priority",
		},
		{
			name:         "blank description",
			content:      `[{"Description": "a", "Priority": 1, "Done": false}, {"Description": "  ", "Priority": 1, "Done": false}]`,
			wantLocation: "/1/Description",
		},
		{
			name:         "missing done",
			content:      `[{"Description": "a", "Priority": 1}]`,
			wantLocation: "/0",
		},
		{
			name:         "not an array",
			content:      `{}`,
			wantLocation: "",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, path := newDB(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			result, err := db.Check()
			require.NoError(t, err)
			require.False(t, result.Valid(), "expected violations")

			locations := make([]string, 0, len(result.Violations))
			for _, v := range result.Violations {
				locations = append(locations, v.Location)
				assert.NotEmpty(t, v.Message)
			}

			assert.Contains(t, locations, tt.wantLocation)
		})
	}
}

func Test_Check_Read_And_Parse_Errors(t *testing.T) {
	t.Parallel()

	db, path := newDB(t)

	_, err := db.Check()
	require.ErrorIs(t, err, todo.ErrRead)

	for _, content := range []string{"{not json", "[] x", "[]]", "[]}", "[] []", "[{}]]"} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, readErr := db.Read()
		require.ErrorIs(t, readErr, todo.ErrParse, "Read(%q)", content)

		_, err = db.Check()
		require.ErrorIs(t, err, todo.ErrParse, "Check(%q)", content)
	}

	require.NoError(t, os.WriteFile(path, []byte("[]\n\n  "), 0o600))

	result, err := db.Check()
	require.NoError(t, err, "trailing whitespace is fine")
	assert.True(t, result.Valid())
}
