package entities

type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleBusiness ActorRole = "business"
	RoleCourier  ActorRole = "courier"
	RoleAdmin    ActorRole = "admin"
	// RoleSystem используется воркером входящих событий (POS/платежные интеграции).
	RoleSystem ActorRole = "system"
)

func (r ActorRole) String() string {
	return string(r)
}

type Actor struct {
	ID   string
	Role ActorRole
}
