package accounts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.db")
	s, err := Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndValidatePassword(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Create("julie", "hunter22", "julie@example.com", CharStat{Gender: "f", HP: 10}, nil)
	require.NoError(t, err)

	assert.NoError(t, s.ValidatePassword("julie", "hunter22"))
	assert.EqualError(t, s.ValidatePassword("julie", "wrongpass1"), invalidCredentials)
	assert.EqualError(t, s.ValidatePassword("nobody", "hunter22"), invalidCredentials)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Create("julie", "hunter22", "julie@example.com", CharStat{Gender: "f"}, nil)
	require.NoError(t, err)
	_, err = s.Create("julie", "different1", "other@example.com", CharStat{Gender: "f"}, nil)
	assert.Error(t, err)
}

func TestCreateRejectsBlockedAndMalformedNames(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{"you", "god", "Ab", "toolongofanamehere"} {
		_, err := s.Create(name, "hunter22", "a@b.com", CharStat{Gender: "f"}, nil)
		assert.Errorf(t, err, "expected %q to be rejected", name)
	}
}

func TestCreateRejectsWeakPassword(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Create("julie", "short", "julie@example.com", CharStat{Gender: "f"}, nil)
	assert.Error(t, err)
	_, err = s.Create("julie", "allletters", "julie@example.com", CharStat{Gender: "f"}, nil)
	assert.Error(t, err)
}

func TestSetPrivilegeGrantAndRevoke(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Create("julie", "hunter22", "julie@example.com", CharStat{Gender: "f"}, nil)
	require.NoError(t, err)

	require.NoError(t, s.SetPrivilege("julie", "wizard", true))
	acc, err := s.Get("julie")
	require.NoError(t, err)
	assert.True(t, acc.Privileges["wizard"])

	require.NoError(t, s.SetPrivilege("julie", "wizard", false))
	acc, err = s.Get("julie")
	require.NoError(t, err)
	assert.False(t, acc.Privileges["wizard"])
}

func TestChangePasswordRequiresOldPassword(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Create("julie", "hunter22", "julie@example.com", CharStat{Gender: "f"}, nil)
	require.NoError(t, err)

	assert.Error(t, s.ChangePassword("julie", "wrongpass1", "newpass2"))
	assert.NoError(t, s.ChangePassword("julie", "hunter22", "newpass2"))
	assert.NoError(t, s.ValidatePassword("julie", "newpass2"))
}

func TestCreatePersistsFullCharStat(t *testing.T) {
	s := openTestStore(t)
	stats := CharStat{
		Gender: "f", Race: "elf", Level: 3, XP: 500, HP: 22,
		AC: 5, MaxHPDice: "3d8", AttackDice: "1d6+2",
		Agility: 14, Charisma: 10, Intelligence: 16, Luck: 9,
		Speed: 12, Stamina: 11, Strength: 8, Wisdom: 13, Alignment: -2,
	}
	_, err := s.Create("julie", "hunter22", "julie@example.com", stats, nil)
	require.NoError(t, err)

	acc, err := s.Get("julie")
	require.NoError(t, err)
	assert.Equal(t, stats, acc.Stats)
}

func TestBanPreventsLoginUntilUnban(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Create("julie", "hunter22", "julie@example.com", CharStat{Gender: "f"}, nil)
	require.NoError(t, err)

	require.NoError(t, s.Ban("julie"))
	assert.Error(t, s.ValidatePassword("julie", "hunter22"))

	require.NoError(t, s.Unban("julie"))
	assert.NoError(t, s.ValidatePassword("julie", "hunter22"))
}

func TestAllListsAccountNamesAlphabetically(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Create("max", "hunter22", "max@example.com", CharStat{Gender: "m"}, nil)
	require.NoError(t, err)
	_, err = s.Create("anna", "hunter22", "anna@example.com", CharStat{Gender: "f"}, nil)
	require.NoError(t, err)

	names, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, []string{"anna", "max"}, names)
}

func TestChangeEmailRequiresPassword(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Create("julie", "hunter22", "julie@example.com", CharStat{Gender: "f"}, nil)
	require.NoError(t, err)

	assert.Error(t, s.ChangeEmail("julie", "wrongpass1", "new@example.com"))
	assert.NoError(t, s.ChangeEmail("julie", "hunter22", "new@example.com"))
	acc, err := s.Get("julie")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", acc.Email)
}

func TestAcceptEmailRejectsWhitespaceAndMissingParts(t *testing.T) {
	assert.NoError(t, AcceptEmail("a@b.com"))
	assert.Error(t, AcceptEmail("a@"))
	assert.Error(t, AcceptEmail("@b.com"))
	assert.Error(t, AcceptEmail(" a@b.com"))
	assert.Error(t, AcceptEmail("a@b.com "))
}
