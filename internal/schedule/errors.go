package schedule

import "errors"

// Причины отклонения бронирования; все исправимы пользователем (выбрать другое
// время), автоматических повторов нет
var (
	// ErrAdvanceNotice возвращается, когда слот нарушает минимальное время до брони
	ErrAdvanceNotice = errors.New("schedule: booking violates minimum advance notice")

	// ErrShopClosed возвращается, когда салон закрыт или время вне рабочих смен
	ErrShopClosed = errors.New("schedule: shop is closed at the requested time")

	// ErrSlotTaken возвращается при пересечении с активным бронированием барбера
	ErrSlotTaken = errors.New("schedule: time slot is already taken")
)

// RejectReason машинно-читаемый код причины отклонения для API-ответов
type RejectReason string

const (
	ReasonAdvanceNotice RejectReason = "ADVANCE_NOTICE"
	ReasonShopClosed    RejectReason = "SHOP_CLOSED"
	ReasonSlotTaken     RejectReason = "SLOT_TAKEN"
)

// ReasonForError возвращает код причины для известных ошибок валидации
func ReasonForError(err error) (RejectReason, bool) {
	switch {
	case errors.Is(err, ErrAdvanceNotice):
		return ReasonAdvanceNotice, true
	case errors.Is(err, ErrShopClosed):
		return ReasonShopClosed, true
	case errors.Is(err, ErrSlotTaken):
		return ReasonSlotTaken, true
	default:
		return "", false
	}
}
