package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProfileUpdatesSkipsOmittedFields(t *testing.T) {
	updates := buildProfileUpdates(profileUpdateInput{
		FirstName: "Ana",
		Phone:     "555-0101",
	})

	assert.Equal(t, map[string]any{
		"first_name": "Ana",
		"phone":      "555-0101",
	}, updates)

	// Omitted fields must not appear at all, or they would blank the
	// stored values.
	assert.NotContains(t, updates, "last_name")
	assert.NotContains(t, updates, "address")
}

func TestBuildProfileUpdatesEmptyInput(t *testing.T) {
	assert.Empty(t, buildProfileUpdates(profileUpdateInput{}))
}

func TestBuildProfileUpdatesNeverTouchesPassword(t *testing.T) {
	// Password changes go through hashing in the handler, never straight
	// into the update map.
	updates := buildProfileUpdates(profileUpdateInput{Password: "new-secret"})
	assert.NotContains(t, updates, "password")
}
