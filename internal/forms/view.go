package forms

import (
	"github.com/Sesiom2704/gapptomobile-v3-sub000/internal/calculations"
)

// FieldView - поле формы, готовое к отображению
type FieldView struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	Editable bool   `json:"editable"`
	Locked   bool   `json:"locked"`
}

// View - состояние формы для отрисовки
type View struct {
	FormID       string      `json:"form_id"`
	Variant      string      `json:"variant"`
	Fields       []FieldView `json:"fields"`
	Driver       string      `json:"driver,omitempty"`
	Mode         string      `json:"mode,omitempty"`
	Participates bool        `json:"participates"`
	Account      string      `json:"account,omitempty"`
}

// Field ищет поле по имени
func (v View) Field(name string) (FieldView, bool) {
	for _, fv := range v.Fields {
		if fv.Name == name {
			return fv, true
		}
	}
	return FieldView{}, false
}

// Text возвращает текст поля или пустую строку
func (v View) Text(name string) string {
	fv, _ := v.Field(name)
	return fv.Text
}

func (f *Form) view() View {
	v := View{
		FormID:  f.id.String(),
		Variant: f.variant.Name,
		Fields:  make([]FieldView, 0, len(calculations.Fields)),
		Driver:  f.variant.FieldName(f.state.Driver),
	}
	for _, field := range calculations.Fields {
		v.Fields = append(v.Fields, FieldView{
			Name:     f.variant.FieldName(field),
			Text:     f.state.Text(field),
			Editable: !f.state.Fixed(field),
			Locked:   f.state.Locks.IsLocked(field),
		})
	}
	if f.selector != nil {
		perms := f.selector.Permissions()
		v.Mode = f.selector.Mode().String()
		v.Participates = perms.Participates
		v.Account = f.account
	}
	return v
}
