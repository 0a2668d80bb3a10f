// internal/event/types.go
package event

const (
	Move               EventType = "MOVE"                 // MovePayload, от InputSystem к игроку
	Shoot              EventType = "SHOOT"                // без данных, зарезервировано
	DragStart          EventType = "DRAG_START"           // DragPayload
	DragMove           EventType = "DRAG_MOVE"            // DragPayload
	DragEnd            EventType = "DRAG_END"             // без данных
	BulletFired        EventType = "BULLET_FIRED"         // *entity.Bullet, от игрока к PhysicsSystem
	BulletOutOfBounds  EventType = "BULLET_OUT_OF_BOUNDS" // *entity.Bullet, от самой пули
	NurseReachedBottom EventType = "NURSE_REACHED_BOTTOM" // *entity.RobotNurse, от самой медсестры
	NurseDestroyed     EventType = "NURSE_DESTROYED"      // HitPayload
	GameOver           EventType = "GAME_OVER"            // GameOverPayload
)

// MovePayload — намерение движения, каждая ось в {-1, 0, 1}.
type MovePayload struct {
	X, Y float64
}

// DragPayload — позиция указателя в нормализованных координатах
// хост-элемента: (0,0) левый верхний угол, (1,1) правый нижний.
type DragPayload struct {
	X, Y float64
}

// HitPayload — попадание пули в медсестру. Bullet и Nurse имеют
// тип entity.GameObject, пакет event не зависит от entity.
type HitPayload struct {
	Bullet interface{}
	Nurse  interface{}
	Award  int
}

// GameOverPayload — итоговый счёт забега.
type GameOverPayload struct {
	Score int
}
