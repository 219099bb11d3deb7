// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/store"
	"github.com/fisiocare/fisio-api/models"
)

type historyService struct {
	historyRepository store.HistoryRepository

	logger *logger.Logger
}

func NewHistoryService(historyRepository store.HistoryRepository, logger *logger.Logger) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		logger:            logger,
	}
}

func (h *historyService) GetHistoryEntry(ctx context.Context, key models.HistoryKey) (models.HistoryDetail, error) {
	detail, err := h.historyRepository.GetHistoryEntry(ctx, key)
	if err != nil {
		return models.HistoryDetail{}, storageError(err)
	}
	return detail, nil
}

func (h *historyService) CreateHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	saved, err := h.historyRepository.CreateHistoryEntry(ctx, entry)
	if err != nil {
		return models.HistoryEntry{}, storageError(err)
	}
	return saved, nil
}

// UpdateHistoryEntry returns ErrNotFound when the key matches nothing.
func (h *historyService) UpdateHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	saved, err := h.historyRepository.UpdateHistoryEntry(ctx, entry)
	if err != nil {
		return models.HistoryEntry{}, storageError(err)
	}
	return saved, nil
}

func (h *historyService) DeleteHistoryEntry(ctx context.Context, key models.HistoryKey) error {
	if _, err := h.historyRepository.DeleteHistoryEntry(ctx, key); err != nil {
		return storageError(err)
	}
	return nil
}
