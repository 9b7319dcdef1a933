package database

import (
	"testing"

	"github.com/classdesk/classbot/internal/domain"
	"github.com/classdesk/classbot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	member := &entity.Member{
		DisplayName: "Alice",
		Address:     "U_ALICE",
		Role:        domain.RoleUser,
		IsActive:    true,
	}

	err := repo.Create(member)
	require.NoError(t, err, "Failed to create member")

	assert.NotZero(t, member.ID, "Expected member ID to be set after creation")
}

func TestMemberRepository_GetByAddress(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	original := &entity.Member{
		DisplayName: "Alice",
		Address:     "U_ALICE",
		Role:        domain.RoleLocalAdmin,
		IsActive:    true,
	}
	require.NoError(t, repo.Create(original))

	found, err := repo.GetByAddress("U_ALICE")
	require.NoError(t, err, "Failed to get member by address")
	require.NotNil(t, found, "Expected to find member")

	assert.Equal(t, original.ID, found.ID)
	assert.Equal(t, original.DisplayName, found.DisplayName)
	assert.Equal(t, original.Role, found.Role)
	assert.True(t, found.IsActive)

	notFound, err := repo.GetByAddress("U_NOBODY")
	require.NoError(t, err, "Unexpected error when member not found")
	assert.Nil(t, notFound, "Expected nil when member not found")
}

func TestMemberRepository_Enroll(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)
	groupRepo := newGroupRepo(db.conn)

	group := &entity.Group{Name: "RoboticsA", OwnerAddress: "U_TEACHER", Timezone: "UTC"}
	require.NoError(t, groupRepo.Create(group))

	alice := &entity.Member{DisplayName: "Alice", Address: "U_ALICE", Role: domain.RoleUser, IsActive: true}
	bob := &entity.Member{DisplayName: "Bob", Role: domain.RoleUser, IsActive: true}
	inactive := &entity.Member{DisplayName: "Carol", Address: "U_CAROL", Role: domain.RoleUser, IsActive: false}
	for _, m := range []*entity.Member{alice, bob, inactive} {
		require.NoError(t, repo.Create(m))
		require.NoError(t, repo.Enroll(m.ID, group.ID))
	}

	// Double enrollment is a no-op
	require.NoError(t, repo.Enroll(alice.ID, group.ID))

	members, err := repo.ListByGroup(group.ID)
	require.NoError(t, err)
	require.Len(t, members, 2, "Expected only active members, each once")

	assert.Equal(t, "Alice", members[0].DisplayName)
	assert.Equal(t, "Bob", members[1].DisplayName)
	assert.True(t, members[0].Reachable())
	assert.False(t, members[1].Reachable(), "Bob has no address")

	require.NoError(t, repo.Unenroll(alice.ID, group.ID))

	members, err = repo.ListByGroup(group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Bob", members[0].DisplayName)
}

func TestMemberRepository_SetRole(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMemberRepo(db.conn)

	member := &entity.Member{DisplayName: "Alice", Address: "U_ALICE", Role: domain.RoleUser, IsActive: true}
	require.NoError(t, repo.Create(member))

	require.NoError(t, repo.SetRole(member.ID, domain.RoleLocalAdmin))
	require.NoError(t, repo.SetActive(member.ID, false))

	found, err := repo.GetByID(member.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, domain.RoleLocalAdmin, found.Role)
	assert.False(t, found.IsActive)
}
