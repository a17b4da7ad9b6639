package repository_test

import (
	"context"
	"testing"
	"time"

	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"
	"agenthub-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	*testutils.BaseTestSuite
	ctx context.Context
}

func (s *RepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) profile(userID string) *models.UserProfile {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.UserProfile{
		UserID:      userID,
		Email:       userID + "@test.com",
		DisplayName: "Agent " + userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *RepositoryTestSuite) createProfile(userID string) *models.UserProfile {
	profile := s.profile(userID)
	key := keys.UserProfile(userID)
	err := s.Store.Create(s.ctx, keys.Projected{PK: key.PK, SK: key.SK}, models.EntityTypeUserProfile, profile)
	require.NoError(s.T(), err)
	return profile
}

func (s *RepositoryTestSuite) TestCreateAndGetRoundTrip() {
	created := s.createProfile("user-1")

	var loaded models.UserProfile
	err := s.Store.Get(s.ctx, keys.UserProfile("user-1"), &loaded)

	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.Email, loaded.Email)
	assert.Equal(s.T(), created.DisplayName, loaded.DisplayName)
}

func (s *RepositoryTestSuite) TestGetMissingItem() {
	var loaded models.UserProfile
	err := s.Store.Get(s.ctx, keys.UserProfile("ghost"), &loaded)

	assert.True(s.T(), apperrors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestCreateRejectsDuplicateKey() {
	s.createProfile("user-1")

	key := keys.UserProfile("user-1")
	err := s.Store.Create(s.ctx, keys.Projected{PK: key.PK, SK: key.SK}, models.EntityTypeUserProfile, s.profile("user-1"))

	assert.ErrorIs(s.T(), err, apperrors.ErrItemExists)
}

func (s *RepositoryTestSuite) TestPutOverwritesExistingItem() {
	s.createProfile("user-1")

	replacement := s.profile("user-1")
	replacement.DisplayName = "Renamed"
	key := keys.UserProfile("user-1")
	err := s.Store.Put(s.ctx, keys.Projected{PK: key.PK, SK: key.SK}, models.EntityTypeUserProfile, replacement)
	require.NoError(s.T(), err)

	var loaded models.UserProfile
	require.NoError(s.T(), s.Store.Get(s.ctx, key, &loaded))
	assert.Equal(s.T(), "Renamed", loaded.DisplayName)
}

func (s *RepositoryTestSuite) TestUpdateSetsAndRemovesFields() {
	s.createProfile("user-1")
	key := keys.UserProfile("user-1")

	err := s.Store.Update(s.ctx, key, map[string]interface{}{
		"OrganizationID": "org-1",
		"DisplayName":    "Updated Agent",
	})
	require.NoError(s.T(), err)

	var loaded models.UserProfile
	require.NoError(s.T(), s.Store.Get(s.ctx, key, &loaded))
	assert.Equal(s.T(), "org-1", loaded.OrganizationID)
	assert.Equal(s.T(), "Updated Agent", loaded.DisplayName)

	// nil removes the attribute
	err = s.Store.Update(s.ctx, key, map[string]interface{}{
		"OrganizationID": nil,
	})
	require.NoError(s.T(), err)

	loaded = models.UserProfile{}
	require.NoError(s.T(), s.Store.Get(s.ctx, key, &loaded))
	assert.Empty(s.T(), loaded.OrganizationID)
}

func (s *RepositoryTestSuite) TestUpdateMissingItem() {
	err := s.Store.Update(s.ctx, keys.UserProfile("ghost"), map[string]interface{}{
		"DisplayName": "anyone",
	})

	assert.True(s.T(), apperrors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDeleteIsIdempotent() {
	s.createProfile("user-1")
	key := keys.UserProfile("user-1")

	require.NoError(s.T(), s.Store.Delete(s.ctx, key))
	require.NoError(s.T(), s.Store.Delete(s.ctx, key))

	var loaded models.UserProfile
	err := s.Store.Get(s.ctx, key, &loaded)
	assert.True(s.T(), apperrors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestQueryFiltersBySortKeyPrefix() {
	now := time.Now().UTC().Truncate(time.Second)
	for _, userID := range []string{"user-a", "user-b"} {
		member := &models.TeamMember{
			UserID:         userID,
			OrganizationID: "org-1",
			Role:           models.RoleMember,
			Status:         models.MemberStatusActive,
			JoinedAt:       now,
			UpdatedAt:      now,
		}
		err := s.Store.Create(s.ctx, keys.TeamMember("org-1", userID), models.EntityTypeTeamMember, member)
		require.NoError(s.T(), err)
	}
	org := &models.Organization{ID: "org-1", Name: "Skyline Realty", OwnerID: "user-a", CreatedAt: now, UpdatedAt: now}
	orgKey := keys.Organization("org-1")
	err := s.Store.Create(s.ctx, keys.Projected{PK: orgKey.PK, SK: orgKey.SK}, models.EntityTypeOrganization, org)
	require.NoError(s.T(), err)

	var members []models.TeamMember
	err = s.Store.Query(s.ctx, "ORG#org-1", "MEMBER#", &members)

	require.NoError(s.T(), err)
	assert.Len(s.T(), members, 2)
}

func (s *RepositoryTestSuite) TestQueryIndexByEmailProjection() {
	now := time.Now().UTC().Truncate(time.Second)
	invitation := &models.Invitation{
		ID:             "inv-1",
		OrganizationID: "org-1",
		Email:          "agent@example.com",
		Role:           models.RoleMember,
		Status:         models.InvitationPending,
		Token:          "tok",
		ExpiresAt:      now.Add(24 * time.Hour),
		CreatedAt:      now,
	}
	key := keys.Invitation("org-1", "inv-1", "agent@example.com", now)
	require.NoError(s.T(), s.Store.Create(s.ctx, key, models.EntityTypeInvitation, invitation))

	var byEmail []models.Invitation
	err := s.Store.QueryIndex(s.ctx, repository.IndexGSI2, "EMAIL#agent@example.com", "", &byEmail)
	require.NoError(s.T(), err)
	require.Len(s.T(), byEmail, 1)
	assert.Equal(s.T(), "inv-1", byEmail[0].ID)

	var byOrg []models.Invitation
	err = s.Store.QueryIndex(s.ctx, repository.IndexGSI1, "ORG#org-1", "INVITE#", &byOrg)
	require.NoError(s.T(), err)
	assert.Len(s.T(), byOrg, 1)
}

func (s *RepositoryTestSuite) TestGetBatchSkipsMissingKeys() {
	s.createProfile("user-1")
	s.createProfile("user-2")

	var profiles []models.UserProfile
	err := s.Store.GetBatch(s.ctx, []keys.Primary{
		keys.UserProfile("user-1"),
		keys.UserProfile("ghost"),
		keys.UserProfile("user-2"),
	}, &profiles)

	require.NoError(s.T(), err)
	assert.Len(s.T(), profiles, 2)
}

func (s *RepositoryTestSuite) TestScanFiltersByEntityType() {
	s.createProfile("user-1")
	now := time.Now().UTC().Truncate(time.Second)
	org := &models.Organization{ID: "org-1", Name: "Skyline Realty", OwnerID: "user-1", CreatedAt: now, UpdatedAt: now}
	orgKey := keys.Organization("org-1")
	require.NoError(s.T(), s.Store.Create(s.ctx, keys.Projected{PK: orgKey.PK, SK: orgKey.SK}, models.EntityTypeOrganization, org))

	var orgs []models.Organization
	err := s.Store.Scan(s.ctx, models.EntityTypeOrganization, &orgs)

	require.NoError(s.T(), err)
	require.Len(s.T(), orgs, 1)
	assert.Equal(s.T(), "org-1", orgs[0].ID)
}

func (s *RepositoryTestSuite) TestTransactWriteAppliesAllOperations() {
	s.createProfile("user-1")
	now := time.Now().UTC().Truncate(time.Second)

	org := &models.Organization{ID: "org-1", Name: "Skyline Realty", OwnerID: "user-1", CreatedAt: now, UpdatedAt: now}
	owner := &models.TeamMember{
		UserID: "user-1", OrganizationID: "org-1",
		Role: models.RoleOwner, Status: models.MemberStatusActive,
		JoinedAt: now, UpdatedAt: now,
	}
	orgKey := keys.Organization("org-1")

	err := s.Store.TransactWrite(s.ctx,
		repository.TransactCreate(keys.Projected{PK: orgKey.PK, SK: orgKey.SK}, models.EntityTypeOrganization, org),
		repository.TransactCreate(keys.TeamMember("org-1", "user-1"), models.EntityTypeTeamMember, owner),
		repository.TransactUpdate(keys.UserProfile("user-1"), map[string]interface{}{
			"OrganizationID": "org-1",
		}),
	)
	require.NoError(s.T(), err)

	var loadedOrg models.Organization
	require.NoError(s.T(), s.Store.Get(s.ctx, orgKey, &loadedOrg))
	memberKey := keys.TeamMember("org-1", "user-1")
	var loadedMember models.TeamMember
	require.NoError(s.T(), s.Store.Get(s.ctx, keys.Primary{PK: memberKey.PK, SK: memberKey.SK}, &loadedMember))
	var loadedProfile models.UserProfile
	require.NoError(s.T(), s.Store.Get(s.ctx, keys.UserProfile("user-1"), &loadedProfile))
	assert.Equal(s.T(), "org-1", loadedProfile.OrganizationID)
}

func (s *RepositoryTestSuite) TestTransactWriteFailsAtomicallyOnConflict() {
	s.createProfile("user-1")
	now := time.Now().UTC().Truncate(time.Second)

	org := &models.Organization{ID: "org-1", Name: "Skyline Realty", OwnerID: "user-1", CreatedAt: now, UpdatedAt: now}
	orgKey := keys.Organization("org-1")
	require.NoError(s.T(), s.Store.Create(s.ctx, keys.Projected{PK: orgKey.PK, SK: orgKey.SK}, models.EntityTypeOrganization, org))

	// second create of the same organization key fails the whole batch
	err := s.Store.TransactWrite(s.ctx,
		repository.TransactCreate(keys.Projected{PK: orgKey.PK, SK: orgKey.SK}, models.EntityTypeOrganization, org),
		repository.TransactUpdate(keys.UserProfile("user-1"), map[string]interface{}{
			"OrganizationID": "org-1",
		}),
	)
	assert.ErrorIs(s.T(), err, apperrors.ErrItemExists)

	var loadedProfile models.UserProfile
	require.NoError(s.T(), s.Store.Get(s.ctx, keys.UserProfile("user-1"), &loadedProfile))
	assert.Empty(s.T(), loadedProfile.OrganizationID)
}

func (s *RepositoryTestSuite) TestTransactWriteUpdateRequiresExistingItem() {
	now := time.Now().UTC().Truncate(time.Second)

	org := &models.Organization{ID: "org-1", Name: "Skyline Realty", OwnerID: "user-1", CreatedAt: now, UpdatedAt: now}
	orgKey := keys.Organization("org-1")

	// the profile was never created, so the update's existence guard fails
	err := s.Store.TransactWrite(s.ctx,
		repository.TransactCreate(keys.Projected{PK: orgKey.PK, SK: orgKey.SK}, models.EntityTypeOrganization, org),
		repository.TransactUpdate(keys.UserProfile("ghost"), map[string]interface{}{
			"OrganizationID": "org-1",
		}),
	)
	assert.True(s.T(), apperrors.IsNotFound(err))

	// no bare item materialized at the profile key
	var loadedProfile models.UserProfile
	err = s.Store.Get(s.ctx, keys.UserProfile("ghost"), &loadedProfile)
	assert.True(s.T(), apperrors.IsNotFound(err))

	// and the organization create rolled back with it
	var loadedOrg models.Organization
	err = s.Store.Get(s.ctx, orgKey, &loadedOrg)
	assert.True(s.T(), apperrors.IsNotFound(err))
}

func TestRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &RepositoryTestSuite{BaseTestSuite: base})
}
