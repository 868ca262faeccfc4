// Package validation собирает нарушения по полям запроса в одну ошибку.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Violation нарушение правила для одного поля
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error ошибка валидации со списком нарушений.
// errors.Is(err, kind) работает через Unwrap.
type Error struct {
	kind       error
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return fmt.Sprintf("%v: %s", e.kind, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Collector накапливает нарушения
type Collector struct {
	violations []Violation
}

// Add добавляет нарушение
func (c *Collector) Add(field, format string, args ...interface{}) {
	c.violations = append(c.violations, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Check добавляет нарушение, если ok == false
func (c *Collector) Check(ok bool, field, format string, args ...interface{}) {
	if !ok {
		c.Add(field, format, args...)
	}
}

// HasViolations возвращает true, если что-то уже добавлено
func (c *Collector) HasViolations() bool {
	return len(c.violations) > 0
}

// Err возвращает *Error с типом kind или nil, если нарушений нет
func (c *Collector) Err(kind error) error {
	if len(c.violations) == 0 {
		return nil
	}
	out := make([]Violation, len(c.violations))
	copy(out, c.violations)
	return &Error{kind: kind, Violations: out}
}

// NewError создает ошибку с одним нарушением
func NewError(kind error, field, format string, args ...interface{}) error {
	c := &Collector{}
	c.Add(field, format, args...)
	return c.Err(kind)
}

// Violations достает список нарушений из цепочки ошибок
func Violations(err error) []Violation {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Violations
	}
	return nil
}
