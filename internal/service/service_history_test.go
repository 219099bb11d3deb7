// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/mock"
	"github.com/fisiocare/fisio-api/internal/store"
	"github.com/fisiocare/fisio-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHistorySvc(t *testing.T) (HistoryService, *mock.MockHistoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockHistoryRepository(ctrl)
	return NewHistoryService(repo, logger.Nop()), repo
}

func TestHistoryService(t *testing.T) {
	ctx := context.Background()
	entry := models.HistoryEntry{PacienteID: strPtr("p-1"), FisioID: strPtr("f-1"), DiagnosticoID: strPtr("D01"), Sintomas: strPtr("dolor")}
	key := entry.Key()

	t.Run("get found", func(t *testing.T) {
		svc, repo := newTestHistorySvc(t)
		repo.EXPECT().GetHistoryEntry(ctx, key).Return(models.HistoryDetail{DiagnosticoID: "D01"}, nil)

		got, err := svc.GetHistoryEntry(ctx, key)

		require.NoError(t, err)
		assert.Equal(t, "D01", got.DiagnosticoID)
	})

	t.Run("get missing", func(t *testing.T) {
		svc, repo := newTestHistorySvc(t)
		repo.EXPECT().GetHistoryEntry(ctx, key).Return(models.HistoryDetail{}, store.ErrNotFound)

		_, err := svc.GetHistoryEntry(ctx, key)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrBackendFailure)
	})

	t.Run("create returns stored row", func(t *testing.T) {
		svc, repo := newTestHistorySvc(t)
		stored := entry
		stored.FechaDiagnostico = strPtr("2024-03-01")
		repo.EXPECT().CreateHistoryEntry(ctx, entry).Return(stored, nil)

		got, err := svc.CreateHistoryEntry(ctx, entry)

		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("create fails", func(t *testing.T) {
		svc, repo := newTestHistorySvc(t)
		repo.EXPECT().CreateHistoryEntry(ctx, entry).Return(models.HistoryEntry{}, store.ErrExecutingQuery)

		_, err := svc.CreateHistoryEntry(ctx, entry)

		assert.ErrorIs(t, err, ErrBackendFailure)
	})

	t.Run("update missing", func(t *testing.T) {
		svc, repo := newTestHistorySvc(t)
		repo.EXPECT().UpdateHistoryEntry(ctx, entry).Return(models.HistoryEntry{}, store.ErrNotFound)

		_, err := svc.UpdateHistoryEntry(ctx, entry)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		svc, repo := newTestHistorySvc(t)
		repo.EXPECT().UpdateHistoryEntry(ctx, entry).Return(entry, nil)

		got, err := svc.UpdateHistoryEntry(ctx, entry)

		require.NoError(t, err)
		assert.Equal(t, entry, got)
	})

	t.Run("delete", func(t *testing.T) {
		svc, repo := newTestHistorySvc(t)
		repo.EXPECT().DeleteHistoryEntry(ctx, key).Return(int64(0), nil)

		assert.NoError(t, svc.DeleteHistoryEntry(ctx, key))
	})

	t.Run("delete fails", func(t *testing.T) {
		svc, repo := newTestHistorySvc(t)
		repo.EXPECT().DeleteHistoryEntry(ctx, key).Return(int64(0), store.ErrExecutingStatement)

		assert.ErrorIs(t, svc.DeleteHistoryEntry(ctx, key), ErrBackendFailure)
	})
}
