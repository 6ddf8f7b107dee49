package entity

import "time"

// Papéis válidos para User.
const (
	RoleArtist     = "artist"
	RoleContractor = "contractor"
	RoleAdmin      = "admin"
)

// Planos de assinatura.
const (
	PlanFree = "free"
	PlanPaid = "paid"
)

// CreditsUnlimited é o valor sentinela de créditos para o plano pago.
const CreditsUnlimited = -1

// User representa um usuário da plataforma (artista ou contratante).
// Os contadores de quota (Credits, BucketUseMB, MessagesSentToday) são
// mutados apenas por updates condicionais atômicos no repositório.
type User struct {
	ID                string
	Email             string
	PasswordHash      string // hash bcrypt, nunca em claro no domínio
	Name              string
	Role              string // artist, contractor, admin
	PlanID            string // free, paid
	Credits           int    // -1 = ilimitado (plano pago)
	BucketUseMB       float64
	MessagesSentToday int
	MessagesResetAt   time.Time // último incremento; reset preguiçoso na virada do dia
	Rating            float64   // média incremental das avaliações recebidas
	ReviewCount       int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsFreePlan indica se o usuário está no plano gratuito.
func (u *User) IsFreePlan() bool {
	return u.PlanID != PlanPaid
}
