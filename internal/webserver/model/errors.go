package model

import "errors"

var (
	// ErrMaxLinksReached is returned when trying to add a helpful link to a
	// campaign which already holds MaxHelpfulLinks of them.
	ErrMaxLinksReached = errors.New("You can only add up to 20 helpful links per campaign.")
	// ErrOwnsCampaigns is returned when trying to delete a user which is
	// still the dungeon master of at least one campaign.
	ErrOwnsCampaigns = errors.New("This user is the Dungeon Master of one or more campaigns and cannot be deleted.")
	// ErrSessionNumberConflict is returned when concurrent session proposals
	// for the same campaign exhausted their numbering retries.
	ErrSessionNumberConflict = errors.New("Could not assign a session number, please try again.")
)
