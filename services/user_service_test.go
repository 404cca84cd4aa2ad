package services

import (
	"testing"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateUserValidations(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	other := signupTenant(t, e, "beanhub")

	_, err := e.users.Create(tn.shopID, &UserCreateReq{
		FirstName: "x", LastName: "y",
		Email: "x@test.com", PhoneNo: "x-1", Password: "supersecret",
		Role: "BARISTA", BranchID: tn.branchID,
	})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	// a branch of another shop reads as missing
	_, err = e.users.Create(tn.shopID, &UserCreateReq{
		FirstName: "x", LastName: "y",
		Email: "x@test.com", PhoneNo: "x-1", Password: "supersecret",
		Role: entity.RoleCashier, BranchID: other.branchID,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")

	// contacts are unique across shops, not per shop
	_, err = e.users.Create(other.shopID, &UserCreateReq{
		FirstName: "x", LastName: "y",
		Email: "aroma-cash@test.com", PhoneNo: "fresh-1", Password: "supersecret",
		Role: entity.RoleChef, BranchID: other.branchID,
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = e.users.Create(other.shopID, &UserCreateReq{
		FirstName: "x", LastName: "y",
		Email: "fresh@test.com", PhoneNo: "aroma-cash-1000", Password: "supersecret",
		Role: entity.RoleChef, BranchID: other.branchID,
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateUserAppliesOnlySetFields(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	staff := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")

	updated, err := e.users.Update(tn.shopID, staff.ID, &UserPatch{
		FirstName: strPtr("renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.FirstName)
	assert.Equal(t, staff.LastName, updated.LastName)
	assert.Equal(t, staff.Email, updated.Email)
	assert.Equal(t, staff.Role, updated.Role)

	// empty patch is a no-op, not an error
	same, err := e.users.Update(tn.shopID, staff.ID, &UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, "renamed", same.FirstName)
}

func TestUpdateUserContactRules(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	cashier := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")
	chef := createStaff(t, e, tn, entity.RoleChef, "aroma-chef")

	// taking a colleague's email conflicts
	_, err := e.users.Update(tn.shopID, cashier.ID, &UserPatch{Email: strPtr(chef.Email)})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// re-submitting your own email does not
	_, err = e.users.Update(tn.shopID, cashier.ID, &UserPatch{Email: strPtr(cashier.Email)})
	assert.NoError(t, err)
}

func TestUpdateUserRejectsExplicitEmptyContacts(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	staff := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")

	// an explicitly sent empty value is invalid input, not an omission
	_, err := e.users.Update(tn.shopID, staff.ID, &UserPatch{Email: strPtr("")})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	_, err = e.users.Update(tn.shopID, staff.ID, &UserPatch{PhoneNo: strPtr("   ")})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	got, err := e.users.Get(tn.shopID, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, staff.Email, got.Email)
	assert.Equal(t, staff.PhoneNo, got.PhoneNo)
}

func TestUpdateUserCrossTenantBranch(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	other := signupTenant(t, e, "beanhub")
	staff := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")

	_, err := e.users.Update(tn.shopID, staff.ID, &UserPatch{BranchID: &other.branchID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// and the user itself is invisible to the other shop's admin
	_, err = e.users.Update(other.shopID, staff.ID, &UserPatch{FirstName: strPtr("stolen")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	err = e.users.Delete(other.shopID, staff.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteUserSoftDeletes(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	staff := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")

	require.NoError(t, e.users.Delete(tn.shopID, staff.ID))

	// gone from reads and listings
	_, err := e.users.Get(tn.shopID, staff.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	list, err := e.users.List(tn.shopID)
	require.NoError(t, err)
	for _, u := range list {
		assert.NotEqual(t, staff.ID, u.ID)
	}

	// but the row survives with the flag set
	var raw entity.User
	require.NoError(t, e.db.First(&raw, staff.ID).Error)
	assert.True(t, raw.Deleted)
}

func TestRestoreUser(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	second, err := e.branches.Create(tn.shopID, &BranchCreateReq{Name: "uptown", Location: "hill rd"})
	require.NoError(t, err)
	staff := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")

	// restoring an active user is rejected
	_, err = e.users.Restore(tn.shopID, &UserRestoreReq{Email: strPtr(staff.Email), BranchID: tn.branchID})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	require.NoError(t, e.users.Delete(tn.shopID, staff.ID))

	// exactly one identifier, no more, no less
	_, err = e.users.Restore(tn.shopID, &UserRestoreReq{BranchID: tn.branchID})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	_, err = e.users.Restore(tn.shopID, &UserRestoreReq{
		Email: strPtr(staff.Email), PhoneNo: strPtr(staff.PhoneNo), BranchID: tn.branchID,
	})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	_, err = e.users.Restore(tn.shopID, &UserRestoreReq{Email: strPtr("ghost@test.com"), BranchID: tn.branchID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	restored, err := e.users.Restore(tn.shopID, &UserRestoreReq{Email: strPtr(staff.Email), BranchID: second.ID})
	require.NoError(t, err)
	assert.False(t, restored.Deleted)
	assert.Equal(t, second.ID, restored.BranchID)

	_, err = e.auth.Login(&LoginReq{Email: staff.Email, Password: "supersecret"})
	assert.NoError(t, err)
}

func TestRestoreByPhone(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	staff := createStaff(t, e, tn, entity.RoleChef, "aroma-chef")
	require.NoError(t, e.users.Delete(tn.shopID, staff.ID))

	restored, err := e.users.Restore(tn.shopID, &UserRestoreReq{PhoneNo: strPtr(staff.PhoneNo), BranchID: tn.branchID})
	require.NoError(t, err)
	assert.Equal(t, staff.ID, restored.ID)
}

func TestDeletedContactPolicy(t *testing.T) {
	strict := newEnv(t)
	tn := signupTenant(t, strict, "aroma")
	staff := createStaff(t, strict, tn, entity.RoleCashier, "aroma-cash")
	require.NoError(t, strict.users.Delete(tn.shopID, staff.ID))

	// default policy: a soft-deleted user still occupies its contacts
	err := strict.users.checkContactsFree(staff.Email, staff.PhoneNo, nil)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	reuse := newEnvWithPolicy(t, true)
	tn2 := signupTenant(t, reuse, "beanhub")
	staff2 := createStaff(t, reuse, tn2, entity.RoleCashier, "beanhub-cash")
	require.NoError(t, reuse.users.Delete(tn2.shopID, staff2.ID))

	// relaxed policy: only active users block a contact
	err = reuse.users.checkContactsFree(staff2.Email, staff2.PhoneNo, nil)
	assert.NoError(t, err)
}
