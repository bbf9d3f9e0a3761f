package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/pkg/ptr"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		size    int
		wantErr bool
	}{
		{name: "default", from: 0, size: 10},
		{name: "offset with empty size", from: 5, size: 0},
		{name: "both zero", from: 0, size: 0, wantErr: true},
		{name: "negative from", from: -1, size: 10, wantErr: true},
		{name: "negative size", from: 0, size: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := NewPage(tt.from, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Page{From: tt.from, Size: tt.size}, page)
		})
	}
}

func TestItemPatch_Apply(t *testing.T) {
	item := Item{ID: 1, Name: "Дрель", Description: "Ударная", Available: true, OwnerID: 7}

	patched := ItemPatch{Available: ptr.Ptr(false)}.Apply(item)

	assert.Equal(t, "Дрель", patched.Name)
	assert.Equal(t, "Ударная", patched.Description)
	assert.False(t, patched.Available)
	assert.Equal(t, int64(7), patched.OwnerID)
}

func TestUserPatch_Apply(t *testing.T) {
	user := User{ID: 1, Name: "Anna", Email: "anna@example.com"}

	patched := UserPatch{Email: ptr.Ptr("new@example.com")}.Apply(user)

	assert.Equal(t, "Anna", patched.Name)
	assert.Equal(t, "new@example.com", patched.Email)
}

func TestItem_MatchesSearch(t *testing.T) {
	available := Item{Description: "This is a Description", Available: true}
	unavailable := Item{Description: "description too", Available: false}

	assert.True(t, available.MatchesSearch("desc"))
	assert.True(t, available.MatchesSearch("DESCRIPTION"))
	assert.False(t, available.MatchesSearch("  "))
	assert.False(t, unavailable.MatchesSearch("desc"))
}

func TestBooking_IsVisibleTo(t *testing.T) {
	b := Booking{Item: BookingItem{OwnerID: 1}, Booker: BookingUser{ID: 2}}

	assert.True(t, b.IsVisibleTo(1))
	assert.True(t, b.IsVisibleTo(2))
	assert.False(t, b.IsVisibleTo(3))
}

func TestDecisionStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, DecisionStatus(true))
	assert.Equal(t, StatusRejected, DecisionStatus(false))
}
