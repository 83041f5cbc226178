package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Kind
		wantErr bool
	}{
		{name: "нижний регистр", in: "addition", want: KindAddition},
		{name: "верхний регистр", in: "DIVISION", want: KindDivision},
		{name: "смешанный регистр", in: "MuLtIpLiCaTiOn", want: KindMultiplication},
		{name: "пробелы по краям", in: "  subtraction  ", want: KindSubtraction},
		{name: "неизвестный тег", in: "modulo", wantErr: true},
		{name: "пустая строка", in: "", wantErr: true},
		{name: "внутренние пробелы не нормализуются", in: "addi tion", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownKind)
				// В тексте ошибки — исходная строка, не нормализованная.
				assert.Contains(t, err.Error(), tt.in)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	c, err := New("Division", nil, []float64{10, 2})
	require.NoError(t, err)

	assert.Equal(t, KindDivision, c.Kind) // тег нормализован к нижнему регистру
	assert.Nil(t, c.OwnerID)
	assert.Equal(t, []float64{10, 2}, c.Inputs)
	assert.NotZero(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)

	_, err = New("square_root", nil, []float64{4})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

// Фабрика не проверяет длину Inputs — короткие списки её проходят,
// их отсекает ValidateCandidate, а Evaluate всё равно тотален по длине.
func TestNew_DoesNotValidateInputs(t *testing.T) {
	c, err := New("addition", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, c.Inputs)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		inputs []float64
		want   float64
	}{
		{name: "сложение", kind: KindAddition, inputs: []float64{1, 2, 3.5}, want: 6.5},
		{name: "вычитание слева направо", kind: KindSubtraction, inputs: []float64{10, 3, 2}, want: 5},
		{name: "вычитание не ассоциативно", kind: KindSubtraction, inputs: []float64{1, 2, 3}, want: -4},
		{name: "умножение", kind: KindMultiplication, inputs: []float64{2, 3, 4}, want: 24},
		{name: "умножение с нулём разрешено", kind: KindMultiplication, inputs: []float64{5, 0, 10}, want: 0},
		{name: "деление слева направо", kind: KindDivision, inputs: []float64{100, 5, 2}, want: 10},
		{name: "дробное деление", kind: KindDivision, inputs: []float64{1, 4}, want: 0.25},
		{name: "ноль в числителе", kind: KindDivision, inputs: []float64{0, 10}, want: 0},
		{name: "отрицательные значения", kind: KindAddition, inputs: []float64{-1, -2, 3}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Calculation{Kind: tt.kind, Inputs: tt.inputs}
			got, err := c.Evaluate()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Пустой список и единственный элемент — одинаково для всех видов:
// 0 и сам элемент соответственно, без ошибок.
func TestEvaluate_DegenerateLengths(t *testing.T) {
	kinds := []Kind{KindAddition, KindSubtraction, KindMultiplication, KindDivision}

	for _, k := range kinds {
		t.Run(string(k)+"/пустой список", func(t *testing.T) {
			c := Calculation{Kind: k}
			got, err := c.Evaluate()
			require.NoError(t, err)
			assert.Equal(t, 0.0, got)
		})
		t.Run(string(k)+"/один элемент", func(t *testing.T) {
			c := Calculation{Kind: k, Inputs: []float64{7.5}}
			got, err := c.Evaluate()
			require.NoError(t, err)
			assert.Equal(t, 7.5, got)
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	// [10, 0] — нулевой делитель, ошибка.
	c := Calculation{Kind: KindDivision, Inputs: []float64{10, 0}}
	_, err := c.Evaluate()
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// [0, 10] — ноль в числителе, это не деление на ноль.
	c = Calculation{Kind: KindDivision, Inputs: []float64{0, 10}}
	got, err := c.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	// Ноль глубже первой позиции тоже ловится.
	c = Calculation{Kind: KindDivision, Inputs: []float64{100, 5, 0, 2}}
	_, err = c.Evaluate()
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

// Запись с нераспознанным Kind (битые данные в хранилище) — ошибка, не паника.
func TestEvaluate_UnknownKind(t *testing.T) {
	c := Calculation{Kind: "modulo", Inputs: []float64{10, 3}}
	_, err := c.Evaluate()
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestHasZeroDivisor(t *testing.T) {
	tests := []struct {
		name   string
		inputs []float64
		want   bool
	}{
		{name: "нет нулей", inputs: []float64{10, 2, 5}, want: false},
		{name: "ноль-делитель", inputs: []float64{10, 0}, want: true},
		{name: "ноль в числителе не считается", inputs: []float64{0, 10}, want: false},
		{name: "ноль в хвосте", inputs: []float64{1, 2, 0}, want: true},
		{name: "один элемент", inputs: []float64{0}, want: false},
		{name: "пустой список", inputs: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasZeroDivisor(tt.inputs))
		})
	}
}

func TestValidateCandidate(t *testing.T) {
	// Меньше двух элементов — отказ для любого вида.
	err := ValidateCandidate(KindAddition, []float64{1})
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "inputs", vErr.Field)
	assert.Equal(t, "at least 2 inputs are required", vErr.Message)

	// Деление с нулевым делителем — отказ до сохранения.
	err = ValidateCandidate(KindDivision, []float64{10, 0})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "cannot divide by zero", vErr.Message)

	// Сначала проверяется длина: короткий список с нулём даёт сообщение про длину.
	err = ValidateCandidate(KindDivision, []float64{0})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "at least 2 inputs are required", vErr.Message)

	// Ноль-делитель запрещён только для деления.
	assert.NoError(t, ValidateCandidate(KindMultiplication, []float64{5, 0, 10}))
	assert.NoError(t, ValidateCandidate(KindSubtraction, []float64{10, 0}))
	assert.NoError(t, ValidateCandidate(KindDivision, []float64{0, 10}))
	assert.NoError(t, ValidateCandidate(KindAddition, []float64{1, 2}))
}
