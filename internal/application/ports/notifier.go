package ports

import (
	"context"

	"github.com/palco-app/palco-api/internal/domain/entity"
)

// Notifier publica um aviso para o gateway de push externo.
// A entrega é responsabilidade do gateway; o domínio só emite o evento.
type Notifier interface {
	Publish(ctx context.Context, notification *entity.Notification) error
}
