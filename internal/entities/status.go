package entities

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

var knownStatuses = map[string]Status{
	string(StatusCreated):   StatusCreated,
	string(StatusPending):   StatusPending,
	string(StatusConfirmed): StatusConfirmed,
	string(StatusDelivered): StatusDelivered,
	string(StatusCancelled): StatusCancelled,
}

// ParseStatus разбирает имя статуса без учёта регистра.
func ParseStatus(name string) (Status, error) {
	s, ok := knownStatuses[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, name)
	}
	return s, nil
}

// InitialStatus возвращает стартовый статус заказа: CONFIRMED если товара
// хватило по всем позициям, иначе PENDING.
func InitialStatus(stockSufficient bool) Status {
	if stockSufficient {
		return StatusConfirmed
	}
	return StatusPending
}

// Terminal сообщает, является ли статус конечным. Из конечного статуса
// заказ уже не выходит.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// EditTo проверяет административную смену статуса. Исходный статус не должен
// быть терминальным, целевой — любой известный. Намеренно разрешаем и
// "странные" переходы вроде CONFIRMED -> CREATED, см. DESIGN.md.
func (s Status) EditTo(name string) (Status, error) {
	if s.Terminal() {
		return "", fmt.Errorf("%w: order is already %s", ErrInvalidTransition, s)
	}
	return ParseStatus(name)
}

// CanCancel разрешает отмену только из CREATED, PENDING и CONFIRMED.
func (s Status) CanCancel() bool {
	switch s {
	case StatusCreated, StatusPending, StatusConfirmed:
		return true
	default:
		return false
	}
}

// RestocksOnCancel сообщает, нужно ли при отмене возвращать товар на склад.
// PENDING заказ склад не списывал, поэтому и возвращать ему нечего.
func (s Status) RestocksOnCancel() bool {
	return s == StatusCreated || s == StatusConfirmed
}
