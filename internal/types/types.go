package types

import "github.com/google/uuid"

// EntityID — уникальный идентификатор сущности в сцене.
type EntityID uuid.UUID

// NewEntityID выдаёт новый случайный идентификатор.
func NewEntityID() EntityID {
	return EntityID(uuid.New())
}

func (id EntityID) String() string {
	return uuid.UUID(id).String()
}

// Short возвращает первые 8 символов, удобно для логов.
func (id EntityID) Short() string {
	return id.String()[:8]
}
