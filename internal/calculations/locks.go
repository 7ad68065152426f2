package calculations

// Locks хранит блокировку производного поля.
// В каждый момент заблокировано не больше одного поля: новая блокировка
// замещает прежнюю.
type Locks struct {
	held Field
}

// Lock блокирует поле как производное
func (l *Locks) Lock(f Field) {
	if f.valid() {
		l.held = f
	}
}

// Unlock снимает блокировку, если она принадлежит полю
func (l *Locks) Unlock(f Field) {
	if l.held == f {
		l.held = FieldNone
	}
}

// IsLocked сообщает, заблокировано ли поле
func (l Locks) IsLocked(f Field) bool {
	return f.valid() && l.held == f
}

// Held возвращает заблокированное поле или FieldNone
func (l Locks) Held() Field {
	return l.held
}
