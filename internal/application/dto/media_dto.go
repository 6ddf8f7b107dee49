package dto

import "time"

// RegisterMediaRequest registro de mídia já enviada ao blob store.
type RegisterMediaRequest struct {
	FileName string  `json:"file_name"`
	URL      string  `json:"url"`
	SizeMB   float64 `json:"size_mb"`
}

// MediaResponse visão de um item de mídia.
type MediaResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	FileName  string    `json:"file_name"`
	URL       string    `json:"url"`
	SizeMB    float64   `json:"size_mb"`
	CreatedAt time.Time `json:"created_at"`
}

// StorageResponse uso de armazenamento contra a quota do plano.
type StorageResponse struct {
	UsedMB  float64 `json:"used_mb"`
	LimitMB float64 `json:"limit_mb"` // -1 = ilimitado
}
