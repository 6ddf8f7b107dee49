package entity

import "time"

// MediaItem registra um arquivo enviado ao blob store externo.
// O domínio só controla o tamanho agregado (MB) contra a quota do plano;
// o conteúdo fica no serviço de armazenamento.
type MediaItem struct {
	ID        string
	OwnerID   string
	FileName  string
	URL       string
	SizeMB    float64
	CreatedAt time.Time
}
