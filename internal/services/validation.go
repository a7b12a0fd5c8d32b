package services

import (
	"github.com/go-playground/validator/v10"

	"github.com/HamMeyva/challenge-engine/internal/types"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	//nolint:errcheck
	v.RegisterValidation("challenge_type", validateChallengeType)
	//nolint:errcheck
	v.RegisterValidation("team_no", validateTeamNo)

	return v
}

func validateChallengeType(fl validator.FieldLevel) bool {
	_, err := types.ChallengeType(fl.Field().String()).TeamSize()
	return err == nil
}

func validateTeamNo(fl validator.FieldLevel) bool {
	return types.TeamNo(fl.Field().Uint()).Valid()
}
