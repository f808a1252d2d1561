package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falacidadao/ocorrencias-api/internal/dto"
	"github.com/falacidadao/ocorrencias-api/internal/middleware"
	"github.com/falacidadao/ocorrencias-api/internal/models"
	appErrors "github.com/falacidadao/ocorrencias-api/pkg/errors"
)

type occurrenceServiceMock struct {
	created *models.Occurrence
	err     error
	gotReq  dto.CreateOccurrenceRequest
	gotUser *models.JWTClaims
}

func (m *occurrenceServiceMock) Create(ctx context.Context, req dto.CreateOccurrenceRequest, actor *models.JWTClaims) (*models.Occurrence, error) {
	m.gotReq = req
	m.gotUser = actor
	if m.err != nil {
		return nil, m.err
	}
	return m.created, nil
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestOccurrenceHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &occurrenceServiceMock{created: &models.Occurrence{ID: "occ-1", Titulo: "Buraco", Status: models.StatusRecebido}}
	handler := NewOccurrenceHandler(mockSvc)

	payload, _ := json.Marshal(dto.CreateOccurrenceRequest{Titulo: "Buraco", Descricao: "Na esquina"})
	c, w := newGinContext(http.MethodPost, "/ocorrencias", payload)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "user-1"})

	handler.Create(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Success bool              `json:"success"`
		Data    models.Occurrence `json:"data"`
		Message string            `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "occ-1", envelope.Data.ID)
	assert.Equal(t, "Ocorrência criada com sucesso!", envelope.Message)
	require.NotNil(t, mockSvc.gotUser)
	assert.Equal(t, "user-1", mockSvc.gotUser.UserID)
}

func TestOccurrenceHandlerCreateInvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewOccurrenceHandler(&occurrenceServiceMock{})

	c, w := newGinContext(http.MethodPost, "/ocorrencias", []byte("{not json"))

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Título e descrição são obrigatórios")
}

func TestOccurrenceHandlerCreateServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &occurrenceServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "Prefeitura não encontrada")}
	handler := NewOccurrenceHandler(mockSvc)

	payload, _ := json.Marshal(dto.CreateOccurrenceRequest{Titulo: "a", Descricao: "b"})
	c, w := newGinContext(http.MethodPost, "/ocorrencias", payload)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "user-1"})

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Prefeitura não encontrada", envelope.Error)
}

func TestOccurrenceHandlerCreateWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &occurrenceServiceMock{err: appErrors.Clone(appErrors.ErrUnauthorized, "Usuário não está logado")}
	handler := NewOccurrenceHandler(mockSvc)

	payload, _ := json.Marshal(dto.CreateOccurrenceRequest{Titulo: "a", Descricao: "b"})
	c, w := newGinContext(http.MethodPost, "/ocorrencias", payload)

	handler.Create(c)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, mockSvc.gotUser)
}
