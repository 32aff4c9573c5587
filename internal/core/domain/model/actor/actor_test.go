package actor_test

import (
	"testing"

	"foodshare/internal/core/domain/model/actor"
	"foodshare/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	t.Run("parses valid roles", func(t *testing.T) {
		role, err := actor.RoleFromString("donor")
		require.NoError(t, err)
		assert.Equal(t, actor.RoleDonor, role)

		role, err = actor.RoleFromString("organization")
		require.NoError(t, err)
		assert.Equal(t, actor.RoleOrganization, role)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		for _, input := range []string{"", "admin", "Donor", "ORGANIZATION"} {
			_, err := actor.RoleFromString(input)
			require.Error(t, err)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, actor.RoleDonor.Validate())
	require.NoError(t, actor.RoleOrganization.Validate())
	require.Error(t, actor.RoleUnknown.Validate())
	require.Error(t, actor.Role(42).Validate())
}

func TestNewActor(t *testing.T) {
	t.Run("creates actor with valid id and role", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(id, actor.RoleOrganization)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, actor.RoleOrganization, a.Role())
		assert.True(t, a.IsOrganization())
	})

	t.Run("rejects zero id", func(t *testing.T) {
		var id kernel.UUID

		_, err := actor.NewActor(id, actor.RoleDonor)

		require.Error(t, err)
	})

	t.Run("rejects invalid role", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), actor.RoleUnknown)

		require.Error(t, err)
	})

	t.Run("zero value actor fails validation", func(t *testing.T) {
		var a actor.Actor

		require.ErrorIs(t, a.Validate(), actor.ErrActorIsNotConstructed)
	})
}

func TestResolveRelationship(t *testing.T) {
	donorID := kernel.NewUUID()
	orgID := kernel.NewUUID()
	strangerID := kernel.NewUUID()

	t.Run("donor side", func(t *testing.T) {
		rel := actor.ResolveRelationship(donorID, donorID, &orgID)
		assert.Equal(t, actor.RelationDonor, rel)
	})

	t.Run("recipient side", func(t *testing.T) {
		rel := actor.ResolveRelationship(orgID, donorID, &orgID)
		assert.Equal(t, actor.RelationRecipient, rel)
	})

	t.Run("unrelated actor", func(t *testing.T) {
		rel := actor.ResolveRelationship(strangerID, donorID, &orgID)
		assert.Equal(t, actor.RelationNone, rel)
	})

	t.Run("no reservation means only the donor is related", func(t *testing.T) {
		assert.Equal(t, actor.RelationDonor, actor.ResolveRelationship(donorID, donorID, nil))
		assert.Equal(t, actor.RelationNone, actor.ResolveRelationship(orgID, donorID, nil))
	})

	t.Run("self-reservation resolves to the donor side", func(t *testing.T) {
		rel := actor.ResolveRelationship(donorID, donorID, &donorID)
		assert.Equal(t, actor.RelationDonor, rel)
	})
}
