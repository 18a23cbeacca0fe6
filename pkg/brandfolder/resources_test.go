package brandfolder_test

import (
	"testing"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPrivacy(t *testing.T) {
	t.Parallel()

	assert.True(t, brandfolder.ValidPrivacy(""))
	assert.True(t, brandfolder.ValidPrivacy(brandfolder.PrivacyPrivate))
	assert.True(t, brandfolder.ValidPrivacy(brandfolder.PrivacyPublic))
	assert.True(t, brandfolder.ValidPrivacy(brandfolder.PrivacyStealth))
	assert.False(t, brandfolder.ValidPrivacy("hidden"))
}

func TestValidPermissionLevel(t *testing.T) {
	t.Parallel()

	assert.True(t, brandfolder.ValidPermissionLevel(brandfolder.PermissionGuest))
	assert.True(t, brandfolder.ValidPermissionLevel(brandfolder.PermissionOwner))
	assert.False(t, brandfolder.ValidPermissionLevel(""))
	assert.False(t, brandfolder.ValidPermissionLevel("superuser"))
}

func TestBrandfolderCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := &brandfolder.BrandfolderCreateRequest{Name: "Acme", Privacy: brandfolder.PrivacyPrivate}
	require.NoError(t, valid.Validate())

	invalid := &brandfolder.BrandfolderCreateRequest{Name: "Acme", Privacy: "hidden"}
	require.ErrorIs(t, invalid.Validate(), brandfolder.ErrInvalidPrivacy)
}

func TestAssetCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := &brandfolder.AssetCreateRequest{Name: "Logo", SectionKey: "sec-1"}
	require.NoError(t, valid.Validate())

	noName := &brandfolder.AssetCreateRequest{SectionKey: "sec-1"}
	require.ErrorIs(t, noName.Validate(), brandfolder.ErrAssetNameRequired)

	noSection := &brandfolder.AssetCreateRequest{Name: "Logo"}
	require.ErrorIs(t, noSection.Validate(), brandfolder.ErrSectionKeyRequired)
}

func TestInvitationCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := &brandfolder.InvitationCreateRequest{
		Email:           "user@example.com",
		PermissionLevel: brandfolder.PermissionCollaborator,
	}
	require.NoError(t, valid.Validate())

	noEmail := &brandfolder.InvitationCreateRequest{PermissionLevel: brandfolder.PermissionAdmin}
	require.ErrorIs(t, noEmail.Validate(), brandfolder.ErrEmailRequired)

	badLevel := &brandfolder.InvitationCreateRequest{Email: "user@example.com", PermissionLevel: "root"}
	require.ErrorIs(t, badLevel.Validate(), brandfolder.ErrInvalidPermissionLevel)
}

func TestCustomFieldsResult_OK(t *testing.T) {
	t.Parallel()

	applied := &brandfolder.CustomFieldsResult{
		Applied: map[string]string{"color": "key-1"},
	}
	assert.True(t, applied.OK())

	partial := &brandfolder.CustomFieldsResult{
		Applied: map[string]string{"color": "key-1"},
		Unresolved: []brandfolder.UnresolvedCustomField{
			{Name: "season", Reason: "no such key"},
		},
	}
	assert.False(t, partial.OK())
}
