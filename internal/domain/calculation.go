package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownKind возвращается, когда тег операции не распознан.
var ErrUnknownKind = errors.New("unknown calculation kind")

// ErrDivisionByZero возвращается при делении на ноль во время вычисления.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNotFound возвращается, когда вычисление не найдено по ID.
var ErrNotFound = errors.New("calculation not found")

// ErrNotOwned возвращается, когда вычисление принадлежит другому пользователю.
var ErrNotOwned = errors.New("calculation not owned by user")

// Kind — вид вычисления. Закрытое множество из четырёх значений, хранится в нижнем регистре.
type Kind string

// Виды вычислений.
const (
	KindAddition       Kind = "addition"
	KindSubtraction    Kind = "subtraction"
	KindMultiplication Kind = "multiplication"
	KindDivision       Kind = "division"
)

// ParseKind разбирает тег операции без учёта регистра (trim + lower, больше никакой нормализации).
// Неизвестный тег — ошибка ErrUnknownKind с исходной (ненормализованной) строкой.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindAddition:
		return KindAddition, nil
	case KindSubtraction:
		return KindSubtraction, nil
	case KindMultiplication:
		return KindMultiplication, nil
	case KindDivision:
		return KindDivision, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
	}
}

// Calculation — запись об одном вычислении. Kind выбирается один раз на создании (через New),
// результат не хранится: он выводится из Inputs при каждом чтении (Evaluate).
type Calculation struct {
	ID        uuid.UUID
	Kind      Kind
	OwnerID   *uuid.UUID // nil — анонимное вычисление
	Inputs    []float64  // порядок значим: первый элемент — база для вычитания и деления
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New — фабрика вычислений: разбирает тег, конструирует запись с новым ID.
// Длину и содержимое Inputs фабрика не проверяет — это работа ValidateCandidate.
func New(kind string, ownerID *uuid.UUID, inputs []float64) (*Calculation, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Calculation{
		ID:        uuid.New(),
		Kind:      k,
		OwnerID:   ownerID,
		Inputs:    inputs,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Evaluate вычисляет результат из Inputs. Функция чистая и тотальная по длине списка:
// пустой список — 0, один элемент — он сам, дальше строго слева направо (ассоциативность
// не предполагается: ((a0-a1)-a2, ((a0/a1)/a2).
//
// Деление на ноль — ошибка ErrDivisionByZero (точное сравнение с нулём, без эпсилона),
// а не Inf/NaN. Запись с нераспознанным Kind в хранилище — ошибка, не паника.
func (c *Calculation) Evaluate() (float64, error) {
	if len(c.Inputs) == 0 {
		return 0, nil
	}
	switch c.Kind {
	case KindAddition:
		sum := 0.0
		for _, v := range c.Inputs {
			sum += v
		}
		return sum, nil
	case KindSubtraction:
		result := c.Inputs[0]
		for _, v := range c.Inputs[1:] {
			result -= v
		}
		return result, nil
	case KindMultiplication:
		result := 1.0
		for _, v := range c.Inputs {
			result *= v
		}
		return result, nil
	case KindDivision:
		result := c.Inputs[0]
		for _, v := range c.Inputs[1:] {
			if v == 0 {
				return 0, ErrDivisionByZero
			}
			result /= v
		}
		return result, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, c.Kind)
	}
}

// CalculationPatch — частичная замена содержимого записи: nil-поле не трогается.
// Сырых сеттеров у записи нет: слитый кандидат заново проходит ValidateCandidate в use case.
type CalculationPatch struct {
	Kind   *string
	Inputs []float64 // nil — не менять; пустой список не проходит валидацию
}

// HasZeroDivisor сообщает, есть ли нулевой делитель (элемент с индексом >= 1, равный нулю).
// Единый предикат для обоих рубежей проверки: схемного (ValidateCandidate) и вычислительного (Evaluate).
func HasZeroDivisor(inputs []float64) bool {
	if len(inputs) < 2 {
		return false
	}
	for _, v := range inputs[1:] {
		if v == 0 {
			return true
		}
	}
	return false
}
