package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gserrano-dev/portfolio-api/internal/adapter"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/mock"
	"github.com/gserrano-dev/portfolio-api/models"
)

func newCommentServiceMocks(t *testing.T, production bool) (CommentService, *mock.MockCommentRepository, *mock.MockCaptchaVerifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockCommentRepository(ctrl)
	verifier := mock.NewMockCaptchaVerifier(ctrl)
	svc := NewCommentService(repo, verifier, production, logger.Nop())
	return svc, repo, verifier
}

func TestCommentCreate_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateCommentRequest
	}{
		{name: "missing nombre", req: models.CreateCommentRequest{Comentario: "Hola"}},
		{name: "missing comentario", req: models.CreateCommentRequest{Nombre: "Ana"}},
		{name: "both empty", req: models.CreateCommentRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repo or verifier expectations: validation fails first
			svc, _, _ := newCommentServiceMocks(t, true)

			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrCommentFieldsRequired)
		})
	}
}

func TestCommentCreate_LengthLimits(t *testing.T) {
	svc, repo, _ := newCommentServiceMocks(t, false)

	atLimit := models.CreateCommentRequest{
		Nombre:     strings.Repeat("a", 100),
		Comentario: strings.Repeat("b", 1000),
	}
	repo.EXPECT().
		Create(gomock.Any(), atLimit.Nombre, atLimit.Comentario).
		Return(models.Comment{ID: 1, Nombre: atLimit.Nombre, Comentario: atLimit.Comentario}, nil)

	_, err := svc.Create(context.Background(), atLimit)
	require.NoError(t, err, "values at the limit must pass")

	_, err = svc.Create(context.Background(), models.CreateCommentRequest{
		Nombre:     strings.Repeat("a", 101),
		Comentario: "Hola",
	})
	assert.ErrorIs(t, err, ErrNombreTooLong)

	_, err = svc.Create(context.Background(), models.CreateCommentRequest{
		Nombre:     "Ana",
		Comentario: strings.Repeat("b", 1001),
	})
	assert.ErrorIs(t, err, ErrComentarioTooLong)
}

func TestCommentCreate_LengthCountsRunes(t *testing.T) {
	svc, repo, _ := newCommentServiceMocks(t, false)

	// 100 runes but 200 bytes
	nombre := strings.Repeat("ñ", 100)
	repo.EXPECT().
		Create(gomock.Any(), nombre, "Hola").
		Return(models.Comment{ID: 1, Nombre: nombre, Comentario: "Hola"}, nil)

	_, err := svc.Create(context.Background(), models.CreateCommentRequest{Nombre: nombre, Comentario: "Hola"})
	assert.NoError(t, err)
}

func TestCommentCreate_DevelopmentSkipsCaptcha(t *testing.T) {
	svc, repo, verifier := newCommentServiceMocks(t, false)

	verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().
		Create(gomock.Any(), "Ana", "Hola").
		Return(models.Comment{ID: 1, Nombre: "Ana", Comentario: "Hola"}, nil)

	created, err := svc.Create(context.Background(), models.CreateCommentRequest{Nombre: "Ana", Comentario: "Hola"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCommentCreate_ProductionRequiresToken(t *testing.T) {
	svc, _, verifier := newCommentServiceMocks(t, true)

	verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Create(context.Background(), models.CreateCommentRequest{Nombre: "Ana", Comentario: "Hola"})
	assert.ErrorIs(t, err, ErrCaptchaRequired)
}

func TestCommentCreate_ProductionRejectedToken(t *testing.T) {
	svc, _, verifier := newCommentServiceMocks(t, true)

	verifier.EXPECT().
		Verify(gomock.Any(), "bad-token").
		Return(models.CaptchaResult{Success: false, ErrorCodes: []string{"invalid-input-response"}}, nil).
		Times(1)

	_, err := svc.Create(context.Background(), models.CreateCommentRequest{
		Nombre:       "Ana",
		Comentario:   "Hola",
		CaptchaToken: "bad-token",
	})
	assert.ErrorIs(t, err, ErrCaptchaRejected)
}

func TestCommentCreate_VerifierErrorPropagates(t *testing.T) {
	svc, _, verifier := newCommentServiceMocks(t, true)

	verifier.EXPECT().
		Verify(gomock.Any(), "token").
		Return(models.CaptchaResult{}, adapter.ErrCaptchaVerification)

	_, err := svc.Create(context.Background(), models.CreateCommentRequest{
		Nombre:       "Ana",
		Comentario:   "Hola",
		CaptchaToken: "token",
	})
	assert.ErrorIs(t, err, adapter.ErrCaptchaVerification)
	assert.NotErrorIs(t, err, ErrCaptchaRejected)
}

func TestCommentCreate_ProductionHappyPath(t *testing.T) {
	svc, repo, verifier := newCommentServiceMocks(t, true)

	verifier.EXPECT().
		Verify(gomock.Any(), "good-token").
		Return(models.CaptchaResult{Success: true}, nil)
	repo.EXPECT().
		Create(gomock.Any(), "Ana", "Hola").
		Return(models.Comment{ID: 5, Nombre: "Ana", Comentario: "Hola"}, nil)

	created, err := svc.Create(context.Background(), models.CreateCommentRequest{
		Nombre:       "Ana",
		Comentario:   "Hola",
		CaptchaToken: "good-token",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestCommentList_DelegatesToRepo(t *testing.T) {
	svc, repo, _ := newCommentServiceMocks(t, false)

	want := models.CommentPage{TotalComments: 3, TotalPages: 1, CurrentPage: 1}
	repo.EXPECT().List(gomock.Any(), 1, 6).Return(want, nil)

	page, err := svc.List(context.Background(), models.ListCommentsRequest{Page: 1, Limit: 6})
	require.NoError(t, err)
	assert.Equal(t, want, page)
}

func TestCommentDelete_NotFoundPropagates(t *testing.T) {
	svc, repo, _ := newCommentServiceMocks(t, false)

	repo.EXPECT().
		DeleteByID(gomock.Any(), int64(404)).
		Return(models.Comment{}, errors.New("comment not found"))

	_, err := svc.Delete(context.Background(), 404)
	assert.Error(t, err)
}
