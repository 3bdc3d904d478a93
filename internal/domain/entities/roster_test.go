//go:build unit

package entities_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
)

func TestParseRoster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected entities.Roster
	}{
		{
			name:     "should parse a single student",
			input:    "username",
			expected: entities.Roster{{"username"}},
		},
		{
			name:     "should parse a group on one line",
			input:    "username,u2sernam,u3sernam",
			expected: entities.Roster{{"username", "u2sernam", "u3sernam"}},
		},
		{
			name:     "should trim spaces around fields",
			input:    " username ,  u2sernam,u3sernam  ",
			expected: entities.Roster{{"username", "u2sernam", "u3sernam"}},
		},
		{
			name:     "should parse one student per line",
			input:    "username\nu2sernam\nu3sernam",
			expected: entities.Roster{{"username"}, {"u2sernam"}, {"u3sernam"}},
		},
		{
			name:     "should parse groups of uneven sizes",
			input:    "username,u2sernam\nu3sernam,u4sernam,u5sernam",
			expected: entities.Roster{{"username", "u2sernam"}, {"u3sernam", "u4sernam", "u5sernam"}},
		},
		{
			name:     "should parse groups mixed with individuals",
			input:    "username,u2sernam,u3sernam\nu4sernam",
			expected: entities.Roster{{"username", "u2sernam", "u3sernam"}, {"u4sernam"}},
		},
		{
			name:     "should keep an empty line as an empty entry",
			input:    "username,u2sernam,u3sernam\n\nu4sernam",
			expected: entities.Roster{{"username", "u2sernam", "u3sernam"}, {}, {"u4sernam"}},
		},
		{
			name:     "should keep a line of separators as an empty entry",
			input:    "alice\n , ,\nbob",
			expected: entities.Roster{{"alice"}, {}, {"bob"}},
		},
		{
			name:     "should drop empty fields inside a row",
			input:    "alice,,bob,",
			expected: entities.Roster{{"alice", "bob"}},
		},
		{
			name:     "should tolerate windows line endings",
			input:    "alice\r\nbob,carol\r\n",
			expected: entities.Roster{{"alice"}, {"bob", "carol"}},
		},
		{
			name:     "should return an empty roster for empty input",
			input:    "",
			expected: entities.Roster{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			reader := strings.NewReader(tt.input)

			// when
			roster, err := entities.ParseRoster(reader)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, roster)
		})
	}

	t.Run("should parse identically with and without a newline at EOF", func(t *testing.T) {
		t.Parallel()

		// given
		withoutNewline := "username\nu2sernam\nu3sernam"
		withNewline := withoutNewline + "\n"

		// when
		first, firstErr := entities.ParseRoster(strings.NewReader(withoutNewline))
		second, secondErr := entities.ParseRoster(strings.NewReader(withNewline))

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, first, second)
		assert.Len(t, second, 3)
	})

	t.Run("should be insensitive to spacing around fields", func(t *testing.T) {
		t.Parallel()

		// given
		compact := "alice\nbob,carol\n\ndave"
		spaced := "  alice\t\n bob ,\tcarol \n   \n dave "

		// when
		first, firstErr := entities.ParseRoster(strings.NewReader(compact))
		second, secondErr := entities.ParseRoster(strings.NewReader(spaced))

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, first, second)
	})
}

func TestReadRoster(t *testing.T) {
	t.Parallel()

	t.Run("should read the roster from a file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "students.csv")
		require.NoError(t, os.WriteFile(path, []byte("alice\nbob, carol\n"), 0o600))

		// when
		roster, err := entities.ReadRoster(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.Roster{{"alice"}, {"bob", "carol"}}, roster)
	})

	t.Run("should return InputError when the file is missing", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.csv")

		// when
		_, err := entities.ReadRoster(path)

		// then
		var inputErr *entities.InputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, path, inputErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestRosterEntry(t *testing.T) {
	t.Parallel()

	t.Run("should classify entries by size", func(t *testing.T) {
		t.Parallel()

		// given
		empty := entities.RosterEntry{}
		single := entities.RosterEntry{"alice"}
		group := entities.RosterEntry{"bob", "carol"}

		// when / then
		assert.True(t, empty.IsEmpty())
		assert.False(t, single.IsEmpty())
		assert.False(t, single.IsGroup())
		assert.True(t, group.IsGroup())
	})
}
