package domain

// ValidationError — ошибка проверки входных данных, привязанная к полю.
// Отличима от системных ошибок: контроллер отвечает 400 и пишет warning, не error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateCandidate — схемный рубеж проверки кандидата на создание или замену содержимого.
// Вызывается до фабрики на создании и заново на каждом обновлении против слитого кандидата.
//
// Порядок проверок фиксирован: сначала длина списка, потом нулевой делитель —
// короткая длина не маскируется сообщением про деление на ноль.
func ValidateCandidate(kind Kind, inputs []float64) error {
	if len(inputs) < 2 {
		return &ValidationError{Field: "inputs", Message: "at least 2 inputs are required"}
	}
	if kind == KindDivision && HasZeroDivisor(inputs) {
		return &ValidationError{Field: "inputs", Message: "cannot divide by zero"}
	}
	return nil
}
