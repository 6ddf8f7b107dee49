package repository

import "github.com/palco-app/palco-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
// Os métodos de quota fazem o check e a mutação em um único update
// condicional no banco, nunca em duas idas.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetForUpdate bloqueia a linha do usuário (SELECT FOR UPDATE);
	// só faz sentido na implementação atada a uma transação.
	GetForUpdate(id string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)

	// ConsumeCredit decrementa um crédito apenas se o saldo permitir
	// (sentinela -1 = ilimitado, não decrementa). Sem saldo: ErrInsufficientCredits.
	ConsumeCredit(id string) error
	// SetPlan troca o plano e redefine o saldo de créditos.
	SetPlan(id, planID string, credits int) error
	// IncrementDailyMessages soma 1 ao contador diário com reset preguiçoso
	// na virada do dia; limit < 0 é ilimitado. Estourou: ErrQuotaExceeded.
	IncrementDailyMessages(id string, limit int) error
	// AddBucketUse soma deltaMB ao uso de armazenamento apenas se o total
	// couber em limitMB (limit < 0 é ilimitado). Estourou: ErrQuotaExceeded.
	AddBucketUse(id string, deltaMB, limitMB float64) error
	// UpdateRating grava a média incremental e o contador de avaliações.
	UpdateRating(id string, rating float64, reviewCount int) error
}
