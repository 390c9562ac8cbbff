// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности, выдаётся при спавне.
// Ноль зарезервирован под "нет сущности".
type EntityID uint64

// NoEntity — пустой идентификатор (например, у шаровой молнии без цели).
const NoEntity EntityID = 0
