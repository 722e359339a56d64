package models

import "time"

// QRType тег типа записи. Определяет, какой энкодер построил payload
// и какая форма используется при редактировании.
type QRType string

// QRType константы для типов QR кодов
const (
	TypeURL   QRType = "url"
	TypeWiFi  QRType = "wifi"
	TypeVCard QRType = "vcard"
	TypeEmail QRType = "email"
	TypePhone QRType = "phone"
	TypeSMS   QRType = "sms"
	TypeEvent QRType = "event"
	TypeBatch QRType = "batch"
)

var typeLabels = map[QRType]string{
	TypeURL:   "URL / Text",
	TypeWiFi:  "WiFi",
	TypeVCard: "Contact",
	TypeEmail: "Email",
	TypePhone: "Phone",
	TypeSMS:   "SMS",
	TypeEvent: "Event",
	TypeBatch: "Batch",
}

// AllTypes returns every known type in display order.
func AllTypes() []QRType {
	return []QRType{TypeURL, TypeWiFi, TypeVCard, TypeEmail, TypePhone, TypeSMS, TypeEvent, TypeBatch}
}

// Label returns the human readable label of the type.
func (t QRType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid reports whether t is one of the known types.
func (t QRType) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// Record представляет сгенерированный QR код, сохраненный локально.
// Payload хранится уже закодированным и никогда не перекодируется при рендере.
type Record struct {
	CreatedAt      time.Time         `json:"createdAt"`      // CreatedAt время создания
	LastModifiedAt time.Time         `json:"lastModifiedAt"` // LastModifiedAt время последнего редактирования
	Logo           *Logo             `json:"logo,omitempty"`
	Frame          *Frame            `json:"frame,omitempty"`
	Source         map[string]string `json:"source,omitempty"` // Source поля исходной формы для повторного редактирования
	ID             string            `json:"id"`               // ID стабильный синтетический идентификатор (UUIDv7)
	Type           QRType            `json:"type"`
	Payload        string            `json:"payload"` // Payload точный текст, закодированный в QR
	Style          Style             `json:"style"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	if r.Style.Margin != nil {
		c.Style.Margin = Modules(*r.Style.Margin)
	}
	if r.Logo != nil {
		logo := *r.Logo
		c.Logo = &logo
	}
	if r.Frame != nil {
		frame := *r.Frame
		c.Frame = &frame
	}
	if r.Source != nil {
		c.Source = make(map[string]string, len(r.Source))
		for k, v := range r.Source {
			c.Source[k] = v
		}
	}
	return &c
}

// Customization is the visual part of a record that the customizer edits.
type Customization struct {
	Logo  *Logo
	Frame *Frame
	Style Style
}

// Customization extracts the visual settings of the record.
func (r *Record) Customization() Customization {
	c := r.Clone()
	return Customization{Style: c.Style, Logo: c.Logo, Frame: c.Frame}
}
