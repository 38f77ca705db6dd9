package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/confirmation.html
var templates embed.FS

// Renderer рендерит письмо с подтверждением бронирования
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer парсит встроенный шаблон письма
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/confirmation.html")
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrRender, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// RenderConfirmation возвращает HTML тело; значения экранирует html/template
func (r *Renderer) RenderConfirmation(data ConfirmationData) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}
