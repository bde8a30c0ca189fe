package domain

// CapacityScope определяет, какие бронирования занимают вместимость.
// Создается через ByResource или ByResourceAndAssignee.
type CapacityScope struct {
	resourceID int64
	assigneeID int64
}

// ByResource общая вместимость по всем бронированиям ресурса независимо от исполнителя
func ByResource(resourceID int64) CapacityScope {
	return CapacityScope{resourceID: resourceID}
}

// ByResourceAndAssignee считает только бронирования указанного исполнителя.
// Нулевой assigneeID означает "любой исполнитель" и дает общую область.
func ByResourceAndAssignee(resourceID, assigneeID int64) CapacityScope {
	if assigneeID <= 0 {
		return ByResource(resourceID)
	}
	return CapacityScope{resourceID: resourceID, assigneeID: assigneeID}
}

// ScopeFor строит область по опциональному исполнителю
func ScopeFor(resourceID int64, assigneeID *int64) CapacityScope {
	if assigneeID == nil {
		return ByResource(resourceID)
	}
	return ByResourceAndAssignee(resourceID, *assigneeID)
}

// ResourceID ресурс области
func (s CapacityScope) ResourceID() int64 {
	return s.resourceID
}

// AssigneeID исполнитель и true для области по исполнителю
func (s CapacityScope) AssigneeID() (int64, bool) {
	return s.assigneeID, s.assigneeID > 0
}

// IsPerAssignee возвращает true для областей ByResourceAndAssignee
func (s CapacityScope) IsPerAssignee() bool {
	return s.assigneeID > 0
}

// Matches проверяет, попадает ли бронирование в область
func (s CapacityScope) Matches(r *Reservation) bool {
	if r.ResourceID != s.resourceID {
		return false
	}
	if !s.IsPerAssignee() {
		return true
	}
	return r.AssigneeID != nil && *r.AssigneeID == s.assigneeID
}
