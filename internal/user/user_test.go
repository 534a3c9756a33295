package user

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindpro/internal/db"
	"remindpro/internal/lang"
	"remindpro/internal/tzutil"
)

func setupDB(t *testing.T) {
	t.Helper()
	db.Open(":memory:")
	t.Cleanup(db.Close)
	Init(db.DB)
}

func TestEnsureAndGet(t *testing.T) {
	setupDB(t)

	_, err := Get("42")
	assert.ErrorIs(t, err, ErrNotFound)

	u, err := Ensure("42", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "42", u.ID)
	assert.Equal(t, lang.English, u.Language)
	assert.Equal(t, tzutil.Default, u.Zone)

	// A second Ensure keeps the stored settings.
	u, err = Ensure("42", "ru")
	require.NoError(t, err)
	assert.Equal(t, lang.English, u.Language)

	u, err = Ensure("7", "de")
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, u.Language)

	n, err := Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSetTimezone(t *testing.T) {
	setupDB(t)
	_, err := Ensure("42", "")
	require.NoError(t, err)

	require.NoError(t, SetTimezone("42", "Asia/Tokyo"))
	u, err := Get("42")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", u.Zone)
	assert.Equal(t, "Asia/Tokyo", u.Location().String())

	assert.ErrorIs(t, SetTimezone("42", "Mars/Base"), tzutil.ErrUnknownZone)
	assert.ErrorIs(t, SetTimezone("nobody", "UTC"), ErrNotFound)
}

func TestSetLanguage(t *testing.T) {
	setupDB(t)
	_, err := Ensure("42", "ru")
	require.NoError(t, err)

	require.NoError(t, SetLanguage("42", lang.English))
	u, err := Get("42")
	require.NoError(t, err)
	assert.Equal(t, lang.English, u.Language)

	assert.ErrorIs(t, SetLanguage("42", lang.Language(9)), lang.ErrUnsupported)
}
