package service_test

import (
	"context"
	"testing"

	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/database/models"
	apperrors "hackathon-registration-backend/internal/errors"
	"hackathon-registration-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAdministrativeOperations_RejectStudents(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newRosterMocks(ctrl)
	v := service.NewValidator()

	hackathons := service.NewHackathonService(m.tx, m.repos, m.checker, m.publisher, v, 4)
	formation := service.NewTeamFormationService(m.tx, m.checker, m.publisher, v)
	review := service.NewApplicantReviewService(m.tx, service.NewCapacityGuard(), m.checker, m.publisher, v)

	ctx := context.Background()
	hackathonID, targetID := uuid.New(), uuid.New()
	status := &service.SetStatusRequest{Status: models.ApplicantStatusApproved}

	// No repository or publisher expectations are set, so any call past the guard fails the test
	testCases := []struct {
		name string
		call func(actor auth.Actor) error
	}{
		{"create hackathon", func(actor auth.Actor) error {
			_, err := hackathons.CreateHackathon(ctx, actor, &service.CreateHackathonRequest{Name: "Spring Hack"})
			return err
		}},
		{"update capacity", func(actor auth.Actor) error {
			_, err := hackathons.UpdateCapacity(ctx, hackathonID, actor, &service.UpdateCapacityRequest{TotalCapacity: 50})
			return err
		}},
		{"form temporary team", func(actor auth.Actor) error {
			_, err := formation.FormTemporaryTeam(ctx, hackathonID, actor, &service.FormTemporaryTeamRequest{TeamName: "Night Owls"})
			return err
		}},
		{"dissolve temporary team", func(actor auth.Actor) error {
			return formation.DissolveTemporaryTeam(ctx, hackathonID, targetID, actor)
		}},
		{"convert temporary team", func(actor auth.Actor) error {
			_, err := formation.ConvertTemporaryTeam(ctx, hackathonID, targetID, actor)
			return err
		}},
		{"review team applicant", func(actor auth.Actor) error {
			_, err := review.SetTeamApplicantStatus(ctx, hackathonID, targetID, actor, status)
			return err
		}},
		{"review individual applicant", func(actor auth.Actor) error {
			_, err := review.SetIndividualApplicantStatus(ctx, hackathonID, targetID, actor, status)
			return err
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call(student())
			assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
			assert.True(t, apperrors.IsAuthorization(err))

			err = tc.call(auth.Actor{})
			assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
		})
	}
}
